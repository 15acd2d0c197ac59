package policy

import (
	"fmt"
	"sort"

	"lens-generator/internal/diagnostic"
	"lens-generator/internal/match"
	"lens-generator/options"
)

// Policy is a compiled scope policy ready for lookups during synthesis.
type Policy struct {
	// Default is the global scope for types without an entry.
	Default options.ScopeEnum

	types map[string]*typePolicy
}

type typePolicy struct {
	scope   options.ScopeEnum
	members map[string]options.ScopeEnum
	cases   map[string]options.ScopeEnum
}

// Empty returns a policy with no entries: everything resolves to ScopeAll.
func Empty() *Policy {
	return &Policy{Default: options.ScopeAll, types: map[string]*typePolicy{}}
}

// Compile parses all scope strings and builds lookup tables. Unknown scope
// spellings and duplicate entries are reported as error diagnostics; the
// returned policy contains every entry that compiled cleanly.
func Compile(f *File, diags *diagnostic.Diagnostics) *Policy {
	p := Empty()

	if f == nil {
		return p
	}

	if f.DefaultScope != "" {
		scope, err := options.Parse(f.DefaultScope)
		if err != nil {
			diags.AddError(diagnostic.CodeUnknownScope, err.Error(), "", "")
		} else {
			p.Default = scope
		}
	}

	for _, te := range f.Types {
		if _, ok := p.types[te.Type]; ok {
			diags.AddError(diagnostic.CodeDuplicateEntry,
				fmt.Sprintf("type %s is listed more than once", te.Type), te.Type, "")
			continue
		}

		tp := &typePolicy{
			members: map[string]options.ScopeEnum{},
			cases:   map[string]options.ScopeEnum{},
		}

		if te.Scope != "" {
			scope, err := options.Parse(te.Scope)
			if err != nil {
				diags.AddError(diagnostic.CodeUnknownScope, err.Error(), te.Type, "")
			} else {
				tp.scope = scope
			}
		}

		for _, me := range te.Members {
			if _, ok := tp.members[me.Member]; ok {
				diags.AddError(diagnostic.CodeDuplicateEntry,
					fmt.Sprintf("member %s is listed more than once", me.Member), te.Type, me.Member)
				continue
			}

			scope, err := options.Parse(me.Scope)
			if err != nil {
				diags.AddError(diagnostic.CodeUnknownScope, err.Error(), te.Type, me.Member)
				continue
			}

			tp.members[me.Member] = scope
		}

		for _, ce := range te.Cases {
			if _, ok := tp.cases[ce.Case]; ok {
				diags.AddError(diagnostic.CodeDuplicateEntry,
					fmt.Sprintf("case %s is listed more than once", ce.Case), te.Type, ce.Case)
				continue
			}

			scope, err := options.Parse(ce.Scope)
			if err != nil {
				diags.AddError(diagnostic.CodeUnknownScope, err.Error(), te.Type, ce.Case)
				continue
			}

			tp.cases[ce.Case] = scope
		}

		p.types[te.Type] = tp
	}

	return p
}

// TypeScope returns the type-level scope annotation, or ScopeUnset.
func (p *Policy) TypeScope(typeID string) options.ScopeEnum {
	if tp, ok := p.types[typeID]; ok {
		return tp.scope
	}

	return options.ScopeUnset
}

// MemberScope returns the member-level scope annotation, or ScopeUnset.
func (p *Policy) MemberScope(typeID, member string) options.ScopeEnum {
	if tp, ok := p.types[typeID]; ok {
		return tp.members[member]
	}

	return options.ScopeUnset
}

// CaseScope returns the case-level scope annotation, or ScopeUnset.
func (p *Policy) CaseScope(typeID, caseName string) options.ScopeEnum {
	if tp, ok := p.types[typeID]; ok {
		return tp.cases[caseName]
	}

	return options.ScopeUnset
}

// ResolveMember computes the effective scope for a member, combining the
// policy with a struct-tag annotation. A member annotated in both places
// has two scope annotations at one site, which is a generation-time error;
// the policy entry is used so generation can continue collecting
// diagnostics.
func (p *Policy) ResolveMember(typeID, member string, tagScope options.ScopeEnum, diags *diagnostic.Diagnostics) options.ScopeEnum {
	policyScope := p.MemberScope(typeID, member)

	if policyScope.IsSet() && tagScope.IsSet() {
		diags.AddError(diagnostic.CodeConflictingScopes,
			fmt.Sprintf("member carries both a struct-tag scope (%s) and a policy scope (%s)", tagScope, policyScope),
			typeID, member)

		return options.Resolve(policyScope, p.TypeScope(typeID), p.Default)
	}

	memberScope := policyScope
	if tagScope.IsSet() {
		memberScope = tagScope
	}

	return options.Resolve(memberScope, p.TypeScope(typeID), p.Default)
}

// ResolveCase computes the effective scope for a union case.
func (p *Policy) ResolveCase(typeID, caseName string) options.ScopeEnum {
	return options.Resolve(p.CaseScope(typeID, caseName), p.TypeScope(typeID), p.Default)
}

// Validate checks every policy entry against the analyzed types: entries
// naming a type or member the analyzer never saw are reported as errors,
// with a near-miss suggestion when one scores high enough.
// known maps qualified type names to their member (or case) names.
func (p *Policy) Validate(known map[string][]string, diags *diagnostic.Diagnostics) {
	knownTypes := make([]string, 0, len(known))
	for typeID := range known {
		knownTypes = append(knownTypes, typeID)
	}

	sort.Strings(knownTypes)

	for typeID, tp := range p.types {
		members, ok := known[typeID]
		if !ok {
			diags.AddError(diagnostic.CodeUnknownType,
				withSuggestion("policy entry names a type that was not analyzed", typeID, knownTypes),
				typeID, "")

			continue
		}

		index := make(map[string]struct{}, len(members))
		for _, m := range members {
			index[m] = struct{}{}
		}

		for member := range tp.members {
			if _, ok := index[member]; !ok {
				diags.AddError(diagnostic.CodeUnknownMember,
					withSuggestion("policy entry names a member the type does not have", member, members),
					typeID, member)
			}
		}

		for caseName := range tp.cases {
			if _, ok := index[caseName]; !ok {
				diags.AddError(diagnostic.CodeUnknownMember,
					withSuggestion("policy entry names a case the union does not have", caseName, members),
					typeID, caseName)
			}
		}
	}
}

// withSuggestion appends the closest known name to a validation message.
func withSuggestion(message, name string, candidates []string) string {
	if hint, ok := match.Closest(name, candidates); ok {
		return fmt.Sprintf("%s (did you mean %s?)", message, hint)
	}

	return message
}
