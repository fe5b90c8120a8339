// Package psort provides a parallel, work-queue-driven quicksort.
//
// # Algorithm
//
// A sort call seeds a shared LIFO task stack with the whole range and starts
// a fixed number of workers. Each worker repeatedly pops a range and either:
//   - resolves it with a fixed sorting network when it has fewer than 6
//     elements, or
//   - partitions it around a pivot and pushes the two halves back.
//
// Every resolved element, including each pivot, is counted on a completion
// tracker owned by the call. Workers exit once the tracker reaches the number
// of elements in the range; there is no separate shutdown signal.
//
// # Pivot Selection
//
// The default strategy samples five evenly spaced elements, orders them with
// the 5-element sorting network and uses the middle one. PivotLast uses the
// last element of the range, which degrades to quadratic work on sorted or
// reverse-sorted input but still terminates.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-parsort/psort"
//
//	func Process(data []int) error {
//	    return psort.Sort(data, 0, len(data), runtime.GOMAXPROCS(0))
//	}
//
// For element types without a natural order use SortFunc, or configure a
// Sorter to choose the pivot strategy, idling behaviour and logging.
//
// # Guarantees
//
// Sorting is not stable. The caller must not touch data[begin:end] while a
// sort is in progress. Independent calls may run concurrently.
package psort
