// Package specfile is the authoring surface: it loads .hcl specification
// files and translates them into the fragment groups and run arguments the
// scheduler consumes. Check references are resolved against the registry
// at load time, so a spec that names an unknown check fails before
// anything runs.
//
// A specification looks like:
//
//	spec "smoke" {
//	  config {
//	    stop_on_fail = true
//	    workers      = 4
//	  }
//
//	  group {
//	    step "migrate" {
//	      check        = "db.migrate"
//	      stop_on_fail = true
//	    }
//	  }
//
//	  group {
//	    config { sequential = true }
//
//	    example "home is set" {
//	      check = "env.present"
//	      args  = { name = "HOME" }
//	    }
//	    text "smoke checks follow" {}
//	  }
//	}
//
// Fragments keep their declaration order inside a group even when block
// types interleave, and groups keep their declaration order inside the
// spec. A SpecEnd fragment is appended in its own trailing group so the
// run always finishes on a synchronization point.
package specfile
