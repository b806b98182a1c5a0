// Package http exposes the analysis pipeline over a JSON API. The frontend
// uploads one price table per request and gets back the complete dashboard
// payload; the server keeps no state between uploads.
package http
