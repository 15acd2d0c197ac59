// Package classify turns a declared type descriptor into a wrapper shape:
// the indirection/container structure that decides which accessor flavors
// can legally be synthesized for a member.
//
// Classification is a pure function over descriptors. It merges exactly one
// level of outer/inner wrapper nesting into the defined combination shapes;
// deeper nesting keeps the outer shape with an opaque inner type.
package classify
