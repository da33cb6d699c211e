// Package formspec loads form definitions: settings overrides plus, for each
// field, an ordered list of declarative rules.
//
// A definition is YAML (JSON is accepted as well, being valid YAML):
//
//	messages:
//	  min: "Please type at least %s characters"
//	patterns:
//	  zip: '^\d{5}$'
//	fields:
//	  email:
//	    rules:
//	      required: true
//	      min: 5
//	      match: email
//	  password:
//	    rules:
//	      required: true
//	      password: true
//	      min: 8
//	    messages:
//	      password: "Password should contain letters and numbers. %data% is invalid password"
//
// Rules run in the order they are written. The document is validated against
// an embedded JSON Schema before it is decoded.
package formspec
