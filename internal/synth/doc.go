// Package synth decides which accessor constructors exist for a classified
// member or union case: the flavor-specific subset its wrapper shape
// supports, filtered by the resolved generation scope.
//
// Synthesis is descriptor-level only. It names each constructor, picks its
// flavor and body strategy, and leaves turning strategies into Go source to
// the gen package.
package synth
