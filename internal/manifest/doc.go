// Package manifest reads and writes YAML declaration manifests.
//
// A manifest lists documentable declarations produced by an external
// parser: their source location, raw docstring, and declared parameters.
// After reconciliation the same format carries the resulting tags.
//
// Example:
//
//	version: "1"
//	declarations:
//	  - name: apache::vhost
//	    kind: define
//	    file: manifests/vhost.pp
//	    line: 3
//	    docstring: |
//	      Configures a virtual host.
//	      @param port [Integer] The port to listen on.
//	    parameters:
//	      - name: port
//	        type: Integer
//	      - name: docroot
package manifest
