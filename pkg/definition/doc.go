// Package definition loads declarative form descriptions from JSON or YAML
// and turns them into form builders.
//
//	forms:
//	  contact:
//	    titleKey: contact_title
//	    sections:
//	      - name: details
//	        elements:
//	          - {name: name, type: text, label: Name, required: true}
//	          - {name: kind, type: combo, label: Kind, options: [home, work]}
package definition
