// Package listops implements the ordered-list behavior shared by the brief's
// list-valued sections: stable reordering, duplication with fresh IDs,
// defensive removal, and display grouping. All operations return a new slice
// and restamp Order to a contiguous 1..N sequence matching array position.
//
// Operating on an ID that is not in the list is a no-op returning the input
// unchanged. Callers only ever pass IDs sourced from the list itself, but
// rapid double-fires from the UI are expected, so the engine never errors.
package listops

// Sequenced is implemented by list item types that carry a unique ID and a
// 1-based order position. All methods are value-semantic: Stamped and
// CloneWith return modified copies.
type Sequenced[T any] interface {
	Key() int64
	Ordinal() int
	Stamped(order int) T
	CloneWith(id int64) T
	Group() string
}

// Restamp returns a copy of list with Order reassigned to contiguous 1..N.
func Restamp[T Sequenced[T]](list []T) []T {
	out := make([]T, len(list))
	for i, item := range list {
		out[i] = item.Stamped(i + 1)
	}
	return out
}

// Append adds an item to the end of the list and restamps.
func Append[T Sequenced[T]](list []T, item T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, item)
	return Restamp(out)
}

// Reorder moves the item identified by fromID to the position where toID
// currently sits. This is a stable array move, not a swap: everything between
// the two positions shifts by one.
func Reorder[T Sequenced[T]](list []T, fromID, toID int64) []T {
	from := indexOf(list, fromID)
	to := indexOf(list, toID)
	if from == -1 || to == -1 || from == to {
		return list
	}

	out := make([]T, 0, len(list))
	out = append(out, list...)
	moved := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]T{moved}, out[to:]...)...)
	return Restamp(out)
}

// Duplicate clones the item identified by id, gives the clone a fresh ID from
// the allocator, and appends it at the end of the list.
func Duplicate[T Sequenced[T]](list []T, id int64, alloc *Allocator) []T {
	i := indexOf(list, id)
	if i == -1 {
		return list
	}
	clone := list[i].CloneWith(alloc.NextID())
	return Append(list, clone)
}

// Remove filters out the item identified by id and restamps the remainder.
// The removed ID is never recycled: the allocator only moves forward.
func Remove[T Sequenced[T]](list []T, id int64) []T {
	i := indexOf(list, id)
	if i == -1 {
		return list
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:i]...)
	out = append(out, list[i+1:]...)
	return Restamp(out)
}

// Update applies fn to the item identified by id and returns the new list.
// The item's ID and Order are restored afterward, so a patch can never
// change identity or position.
func Update[T Sequenced[T]](list []T, id int64, fn func(T) T) []T {
	i := indexOf(list, id)
	if i == -1 {
		return list
	}
	out := make([]T, len(list))
	copy(out, list)
	old := out[i]
	out[i] = fn(old).CloneWith(old.Key()).Stamped(old.Ordinal())
	return out
}

// UncategorizedLabel is the bucket for items without a group label.
const UncategorizedLabel = "Uncategorized"

// Bucket is one display group produced by GroupByCategory.
type Bucket[T any] struct {
	Label string
	Items []T
}

// GroupByCategory partitions the list into buckets keyed by each item's group
// label, in first-appearance order. Items keep their relative order within a
// bucket. The flat list and its Order values are untouched; this is display
// grouping only.
func GroupByCategory[T Sequenced[T]](list []T) []Bucket[T] {
	var buckets []Bucket[T]
	index := make(map[string]int)
	for _, item := range list {
		label := item.Group()
		if label == "" {
			label = UncategorizedLabel
		}
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, Bucket[T]{Label: label})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}
	return buckets
}

// MaxKey returns the largest ID in the list, or 0 for an empty list.
func MaxKey[T Sequenced[T]](list []T) int64 {
	var max int64
	for _, item := range list {
		if item.Key() > max {
			max = item.Key()
		}
	}
	return max
}

func indexOf[T Sequenced[T]](list []T, id int64) int {
	for i, item := range list {
		if item.Key() == id {
			return i
		}
	}
	return -1
}
