package httpkit

import "net/http"

// APIV1 is the mount point of the versioned API
const APIV1 = "/api/v1"

// MountAPIV1 mounts a subrouter under /api/v1, applies mw, then calls mount
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  qa.MountRoutes(api)
//	})
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIV1, mw, mount)
}
