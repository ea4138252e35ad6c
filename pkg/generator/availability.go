package generator

import (
	"errors"
	"fmt"
	"slices"

	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/samber/lo"
)

// HoursPerDay is the teaching window of a room, 9:00 to 19:00
const HoursPerDay = 10

var ErrNoAvailability = errors.New("generator: no room matches the request")

type RoomKind string

const (
	LabRoom     RoomKind = "lab"
	LectureRoom RoomKind = "lecture"
)

type AvailabilityKey struct {
	Kind     RoomKind
	Semester model.Semester
	Location string
	WeekDay  model.WeekDay
}

func (key AvailabilityKey) String() string {
	return fmt.Sprintf("%v%v|%v|%v", key.Kind, key.Semester, key.Location, key.WeekDay)
}

// Choice is the outcome of Availability.Choose. OtherWeekDay is only set for two-day requests
type Choice struct {
	Location     string
	WeekDay      model.WeekDay
	OtherWeekDay model.WeekDay
}

// Availability tracks the teaching hours left in every room, per semester and weekday
type Availability struct {
	keys  []AvailabilityKey
	hours map[AvailabilityKey]int
}

// NewAvailability gives every lab and lecture hall HoursPerDay hours on each weekday of both semesters
func NewAvailability(labs, lectureHalls []string) *Availability {
	availability := &Availability{
		keys:  make([]AvailabilityKey, 0, 2*len(model.WeekDays)*(len(labs)+len(lectureHalls))),
		hours: make(map[AvailabilityKey]int),
	}
	for _, semester := range model.Semesters {
		for _, location := range labs {
			for _, day := range model.WeekDays {
				availability.add(AvailabilityKey{LabRoom, semester, location, day})
			}
		}
		for _, location := range lectureHalls {
			for _, day := range model.WeekDays {
				availability.add(AvailabilityKey{LectureRoom, semester, location, day})
			}
		}
	}
	return availability
}

func (availability *Availability) add(key AvailabilityKey) {
	if _, ok := availability.hours[key]; ok {
		return
	}
	availability.keys = append(availability.keys, key)
	availability.hours[key] = HoursPerDay
}

// Hours returns the hours left under key, 0 for unknown keys
func (availability *Availability) Hours(key AvailabilityKey) int {
	return availability.hours[key]
}

// Total sums the hours left in every room
func (availability *Availability) Total() int {
	return lo.Sum(lo.Values(availability.hours))
}

// Consume takes hours away from key. Unknown keys are ignored
func (availability *Availability) Consume(key AvailabilityKey, hours int) {
	if _, ok := availability.hours[key]; ok {
		availability.hours[key] -= hours
	}
}

// Choose picks the room and weekday of the given kind and semester with the most hours left, skipping avoid.
// With twoDays it also picks a second weekday in the same room, different from the first and from avoid.
// Ties are broken by the order in which rooms were registered
func (availability *Availability) Choose(kind RoomKind, semester model.Semester, twoDays bool, avoid model.WeekDay) (Choice, error) {
	candidates := lo.Filter(availability.keys, func(key AvailabilityKey, _ int) bool {
		return key.Kind == kind && key.Semester == semester
	})
	slices.SortStableFunc(candidates, func(a, b AvailabilityKey) int {
		return availability.hours[b] - availability.hours[a]
	})

	main, found := lo.Find(candidates, func(key AvailabilityKey) bool { return key.WeekDay != avoid })
	if !found {
		return Choice{}, fmt.Errorf("%w: %v room in %v avoiding %v", ErrNoAvailability, kind, semester, avoid)
	}
	choice := Choice{Location: main.Location, WeekDay: main.WeekDay}
	if !twoDays {
		return choice, nil
	}

	second, found := lo.Find(candidates, func(key AvailabilityKey) bool {
		return key.Location == main.Location && key.WeekDay != main.WeekDay && key.WeekDay != avoid
	})
	if !found {
		return Choice{}, fmt.Errorf("%w: second day in %v", ErrNoAvailability, main.Location)
	}
	choice.OtherWeekDay = second.WeekDay
	return choice, nil
}
