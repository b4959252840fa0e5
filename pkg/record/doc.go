// Package record models the product records factpage renders. A record is
// decoded from a JSON (or YAML) document into typed sections; every top-level
// key is optional and falls back to the default declared in Fields.
package record
