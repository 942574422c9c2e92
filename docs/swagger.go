// Package docs Nhero Website API.
//
// Content-delivery and lead-capture backend for the Nhero Milano website.
// Serves composed, localized page payloads (experiences, menu, events,
// business services, contacts) from the Directus CMS, and accepts contact
// and business-quote submissions which are written back into the CMS.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
