// Package printing renders report documents to PDF through a headless
// Chrome instance. The HTML for each document is built locally and piped
// through the DevTools protocol, so no template or asset files need to be
// reachable from the browser.
package printing
