// Package inliner converts a class-styled HTML subtree into a detached copy
// whose presentation is carried entirely by inline style attributes.
//
// The transform runs in four steps over golang.org/x/net/html nodes:
//
//  1. Clone the source subtree, keeping source and copy index-aligned.
//  2. For every aligned pair, read the source's resolved style through a
//     StyleResolver and prepend the filtered declarations to the copy.
//  3. For unordered-list items whose bullet exists only as ::before
//     content, compute a Decoration and splice it in as a real <span>.
//  4. Wrap the copy's content in an outer/inner <section> pair carrying
//     the root's background, padding and typography.
//
// The source tree is never modified. Resolved styles come from the
// StyleResolver passed in, so the same transform runs against a headless
// browser snapshot or against literal property maps in tests.
package inliner
