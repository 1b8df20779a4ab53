// Package phase implements a local haplotype phasing engine for polyploid
// genomes. Given a set of sequencing reads represented by the alleles they
// observe at heterozygous variant positions, it partitions those reads into
// k clusters, one per haplotype, such that reads in the same cluster agree
// on as many positions as possible.
//
// The engine is single-threaded and synchronous: every exported function
// here runs to completion on the calling goroutine and touches no shared
// mutable state, so callers may invoke it concurrently across disjoint
// genomic intervals without locking.
//
// Read ingestion, VCF/BAM parsing, and the CLI that drives a whole-chromosome
// phasing run live outside this package; see package vcfpolish for the one
// external seam (VCF-guided haplotype polishing) this engine calls through.
package phase
