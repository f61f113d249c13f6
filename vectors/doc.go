/*
Package vectors provides four flavors of a one dimensional container of
numeric elements, differing on two independent axes:

	- ownership: the container either owns its backing storage ( Vector,
	  MutVector ) or views a window of storage owned by someone else
	  ( VectorSlice, MutVectorSlice ).
	- mutability: operations either always produce a freshly allocated
	  result ( Vector, VectorSlice ) or are allowed to overwrite the
	  container's own elements in place ( MutVector, MutVectorSlice ).

Arithmetic ( Add, Sub, Dot ) works between any pairing of the four flavors
and decides by itself which operand's storage holds the result: a mutable
left operand is reused first, then a mutable right operand, and only when
both sides are immutable a new Vector is allocated. Map and Combine run
user functions over the elements, either into a fresh Vector or in place
on the mutable flavors.

Mutable owners hand out borrowed views and track them at runtime: any
number of read only views may be alive at once, a mutable view is
exclusive over its region, and violations panic with ErrBorrowConflict.

None of the containers is safe for concurrent use.

Building with the `noheap` tag reduces the package to the two view
flavors and the in place operations, for environments where allocating
is not an option. Building with the `moveonly` tag removes the
element-copying conversions, leaving only the ones that take storage over.
*/
package vectors
