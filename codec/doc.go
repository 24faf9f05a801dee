// SPDX-License-Identifier: MIT

// Package codec maps lattices and assignments to YAML documents.
//
// A lattice document names its kind and carries the structural input:
//
//	kind: powerset
//	leaves: [A, B, C]
//	priors: [1, 1, 2]
//
//	kind: taxonomy
//	taxonomy:
//	  name: Object
//	  children:
//	    - name: Ground
//	      children:
//	        - {name: Car, weight: 0.2}
//	        - {name: Truck, weight: 0.15}
//
// Building the same document twice yields lattices with the same hash, so
// assignments written against one can be read back against the other.
//
// An assignment document maps element text to weight:
//
//	A: 0.1
//	B|C: 0.2
//	⊤: 0.7
//
// Documents are validated with go-playground/validator before use.
package codec
