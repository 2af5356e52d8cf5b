// Package emit hands generated batches to their destination. Emitters receive
// a complete batch and must either deliver all of it or none of it.
package emit
