/*
Package pausegov defines the common interfaces that tie together the
governance extension, the stores and the ledger host, as well as the small
value types shared by all of them (addresses, conditions and time).

Context carries the per call information, such as the block time, the
height and the logger. There should exist two functions for every XYZ of
type T that we want to support in Context:

  WithXYZ(Context, T) Context
  GetXYZ(Context) (val T, ok bool)

WithXYZ panics if the value was previously set to avoid lower-level modules
overwriting it.
*/
package pausegov
