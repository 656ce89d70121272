// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// GraphSnapshot is the predicate function for graphsnapshot builders.
type GraphSnapshot func(*sql.Selector)

// ScheduleEntry is the predicate function for scheduleentry builders.
type ScheduleEntry func(*sql.Selector)
