package synth

import (
	"fmt"

	"lens-generator/flavor"
	"lens-generator/internal/classify"
	"lens-generator/internal/diagnostic"
)

// Notes attached to constructors whose access is a documented limitation
// rather than a full capability.
const (
	noteSharedMut  = "mutation succeeds only while the shared handle is the sole owner"
	noteSharedDup  = "consuming a shared handle duplicates the payload instead of moving it"
	notePeek       = "the queue top is read-only; mutating it could break the heap order"
	noteDetached   = "the returned reference is a detached copy; writes do not reach the container"
	noteLockedCell = "accessors stop at the guard; reach the payload through scoped acquisition"
)

// Member synthesizes the accessor constructors for one classified member,
// filtered by the member's resolved scope. Limitation remarks become Info
// diagnostics so a generation report can surface them.
func Member(spec MemberSpec, diags *diagnostic.Diagnostics) []Constructor {
	e := emitter{spec: spec, diags: diags}
	c := spec.Classified

	declared := c.Declared
	inner := c.Inner

	switch c.Shape {
	case classify.ShapePlain:
		e.add(flavor.Readable, StrategyDirect, ParamNone, declared, "")
		e.add(flavor.FailableReadable, StrategyPresent, ParamNone, declared, "")
		e.add(flavor.Writable, StrategyDirect, ParamNone, declared, "")
		e.add(flavor.FailableWritable, StrategyPresent, ParamNone, declared, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.add(flavor.FailableOwned, StrategyMovePresent, ParamNone, declared, "")

	case classify.ShapeOptional:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyOptionUnwrap, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyOptionUnwrap, ParamNone, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.add(flavor.FailableOwned, StrategyOptionMove, ParamNone, inner, "")

	case classify.ShapeIndirection:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyDeref, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyDeref, ParamNone, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.add(flavor.FailableOwned, StrategyDerefMove, ParamNone, inner, "")

	case classify.ShapeShared:
		e.add(flavor.Readable, StrategyDirect, ParamNone, declared, "")
		e.add(flavor.FailableReadable, StrategySharedRef, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategySharedMut, ParamNone, inner, noteSharedMut)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.add(flavor.FailableOwned, StrategySharedClone, ParamNone, inner, noteSharedDup)
		e.info(diagnostic.CodeLimitedMutation,
			"shared ownership exposes conditional mutation only; exclusivity is checked at call time")

	case classify.ShapeSequence:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyFirstElem, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyFirstElem, ParamNone, inner, "")
		e.add(flavor.FailableReadable, StrategyIndexAt, ParamIndex, inner, "")
		e.add(flavor.FailableWritable, StrategyIndexAt, ParamIndex, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.add(flavor.FailableOwned, StrategyMovePresent, ParamNone, declared, "")

	case classify.ShapeDeque, classify.ShapeLinkedSeq:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyFrontMethod, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyFrontMethod, ParamNone, inner, "")
		e.add(flavor.FailableReadable, StrategyAtMethod, ParamIndex, inner, "")
		e.add(flavor.FailableWritable, StrategyAtMethod, ParamIndex, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeHashMapping:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyKeyAt, ParamKey, inner, noteDetached)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.add(flavor.FailableOwned, StrategyMovePresent, ParamNone, declared, "")
		e.info(diagnostic.CodeNoAddressableElem,
			"builtin map elements are not addressable; no writable element accessor is synthesized")

	case classify.ShapeOrderedMapping:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyKeyAtMethod, ParamKey, inner, "")
		e.add(flavor.FailableWritable, StrategyKeyAtMethod, ParamKey, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeHashSet, classify.ShapeOrderedSet:
		e.container(declared)

		note := ""
		if c.Shape == classify.ShapeHashSet {
			note = noteDetached
		}

		e.add(flavor.FailableReadable, StrategyAnyElem, ParamNone, inner, note)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapePriorityQueue:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyPeek, ParamNone, inner, notePeek)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.info(diagnostic.CodeLimitedMutation,
			"priority queue peek is read-only; no writable element accessor is synthesized")

	case classify.ShapeResult:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyOkPayload, ParamNone, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.info(diagnostic.CodeLimitedMutation,
			"the success payload is readable in place but not mutable in place")

	case classify.ShapeMutexGuarded, classify.ShapeRwGuarded:
		e.add(flavor.Readable, StrategyDirect, ParamNone, declared, noteLockedCell)
		e.add(flavor.Writable, StrategyDirect, ParamNone, declared, noteLockedCell)
		e.info(diagnostic.CodeLimitedMutation,
			"lock-guarded payloads are reached through scoped acquisition, not synthesized accessors")

	case classify.ShapeWeakRef:
		e.add(flavor.Readable, StrategyDirect, ParamNone, declared, "")
		e.info(diagnostic.CodeLimitedMutation,
			"a weak back-reference grants no mutation; only container access is synthesized")

	case classify.ShapeTagged:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyTaggedValue, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyTaggedValue, ParamNone, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeOptionalOfIndirection:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyOptionDeref, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyOptionDeref, ParamNone, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeIndirectionOfOptional:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyDerefOption, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyDerefOption, ParamNone, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeOptionalOfShared:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyOptionShared, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyOptionShared, ParamNone, inner, noteSharedMut)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeSharedOfOptional:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategySharedOption, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategySharedOption, ParamNone, inner, noteSharedMut)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeOptionalOfSequence:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyOptionFirst, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyOptionFirst, ParamNone, inner, "")
		e.add(flavor.FailableReadable, StrategyOptionIndexAt, ParamIndex, inner, "")
		e.add(flavor.FailableWritable, StrategyOptionIndexAt, ParamIndex, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeSequenceOfOptional:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyFirstOption, ParamNone, inner, "")
		e.add(flavor.FailableWritable, StrategyFirstOption, ParamNone, inner, "")
		e.add(flavor.FailableReadable, StrategyIndexAtOption, ParamIndex, inner, "")
		e.add(flavor.FailableWritable, StrategyIndexAtOption, ParamIndex, inner, "")
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")

	case classify.ShapeOptionalOfHashMapping:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyOptionKeyAt, ParamKey, inner, noteDetached)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.info(diagnostic.CodeNoAddressableElem,
			"builtin map elements are not addressable; no writable element accessor is synthesized")

	case classify.ShapeHashMappingOfOptional:
		e.container(declared)
		e.add(flavor.FailableReadable, StrategyKeyAtOption, ParamKey, inner, noteDetached)
		e.add(flavor.Owned, StrategyMove, ParamNone, declared, "")
		e.info(diagnostic.CodeNoAddressableElem,
			"builtin map elements are not addressable; no writable element accessor is synthesized")

	case classify.ShapeSharedOfMutexGuarded, classify.ShapeSharedOfRwGuarded:
		e.add(flavor.Readable, StrategyDirect, ParamNone, declared, "")

		if len(declared.Args) == 1 {
			e.add(flavor.FailableReadable, StrategySharedCell, ParamNone, declared.Args[0], noteLockedCell)
		}

		e.info(diagnostic.CodeLimitedMutation,
			"lock-guarded payloads are reached through scoped acquisition, not synthesized accessors")

	default:
		// Unknown shapes synthesize nothing; the classifier never produces
		// them for well-formed descriptors.
	}

	e.noteDeepNesting()

	return e.out
}

// emitter accumulates constructors for one member, applying scope
// filtering and naming uniformly.
type emitter struct {
	spec  MemberSpec
	diags *diagnostic.Diagnostics
	out   []Constructor
}

// add appends one constructor if the member's scope permits its flavor.
func (e *emitter) add(fl flavor.Enum, st Strategy, param ParamKind, value classify.TypeDesc, note string) {
	if !e.spec.Scope.Allows(fl) {
		return
	}

	name := e.spec.TypeName + e.spec.Member + fl.Suffix()
	if param != ParamNone {
		name += "At"
	}

	ctor := Constructor{
		Name:     name,
		Flavor:   fl,
		Strategy: st,
		Param:    param,
		Value:    value,
		Member:   e.spec.Member,
		Note:     note,
	}

	if param == ParamKey {
		ctor.Key = e.spec.Classified.Key
	}

	e.out = append(e.out, ctor)
}

// container emits the whole-container read and write accessors shared by
// most shapes.
func (e *emitter) container(declared classify.TypeDesc) {
	e.add(flavor.Readable, StrategyDirect, ParamNone, declared, "")
	e.add(flavor.Writable, StrategyDirect, ParamNone, declared, "")
}

func (e *emitter) info(code, message string) {
	if e.diags == nil {
		return
	}

	e.diags.AddInfo(code, message, e.typeID(), e.spec.Member)
}

// noteDeepNesting reports the documented imprecision: a wrapper whose inner
// type is itself a wrapper, but whose pairing has no merged combination,
// keeps the outer shape with an opaque inner.
func (e *emitter) noteDeepNesting() {
	if e.diags == nil {
		return
	}

	c := e.spec.Classified
	if c.Shape == classify.ShapePlain || c.Shape.IsNested() || c.Inner.IsZero() {
		return
	}

	if classify.Classify(c.Inner).Shape == classify.ShapePlain {
		return
	}

	e.diags.AddInfo(diagnostic.CodeDeepNesting,
		fmt.Sprintf("nested wrapper %s is not merged; accessors stop at the outer %s layer", c.Inner, c.Shape),
		e.typeID(), e.spec.Member)
}

func (e *emitter) typeID() string {
	if e.spec.TypePkg == "" {
		return e.spec.TypeName
	}

	return e.spec.TypePkg + "." + e.spec.TypeName
}
