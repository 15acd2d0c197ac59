// Package policy loads and compiles the YAML generation-scope file: which
// accessor flavors to synthesize, selectable per type, per member, and per
// union case, with member-level entries overriding type-level ones.
//
// A site may carry at most one scope annotation. A policy entry and a
// struct-tag annotation on the same member conflict and fail generation.
package policy
