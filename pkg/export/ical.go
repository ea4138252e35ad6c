package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/samber/lo"
)

const productID = "-//classplanner//timetable//EN"

var weekdayNumbers = map[model.WeekDay]time.Weekday{
	model.Monday:    time.Monday,
	model.Tuesday:   time.Tuesday,
	model.Wednesday: time.Wednesday,
	model.Thursday:  time.Thursday,
	model.Friday:    time.Friday,
}

// TeacherCalendar renders the weekly slots of every group the teacher holds in semester as recurring iCalendar
// events. Each event first occurs on the slot's weekday on or after start and repeats for weeks weeks
func TeacherCalendar(state model.State, teacherID uint64, semester model.Semester, start time.Time, weeks int) (string, error) {
	teacher, found := lo.Find(state.Users, func(user model.User) bool { return user.ID == teacherID })
	if !found {
		return "", model.NotFoundError{Kind: model.UserKind, ID: teacherID}
	}
	if weeks <= 0 {
		return "", fmt.Errorf("%w: %d weeks", model.ErrInvalid, weeks)
	}

	subjects := lo.KeyBy(state.Subjects, func(subject model.Subject) uint64 { return subject.ID })
	groups := lo.KeyBy(state.Groups, func(group model.Group) uint64 { return group.ID })

	calendar := ics.NewCalendar()
	calendar.SetMethod(ics.MethodPublish)
	calendar.SetProductId(productID)
	calendar.SetName(fmt.Sprintf("%v %v", teacher.FirstName, teacher.LastName))

	stamp := time.Now().UTC()
	for _, slot := range state.Slots {
		group, ok := groups[slot.GroupID]
		if !ok || group.TeacherID != teacherID || slot.Semester != semester {
			continue
		}
		subject := subjects[group.SubjectID]
		day := firstOccurrence(start, slot.WeekDay)

		event := calendar.AddEvent(fmt.Sprintf("slot-%d@classplanner", slot.ID))
		event.SetDtStampTime(stamp)
		event.SetStartAt(day.Add(time.Duration(slot.StartTime) * time.Minute))
		event.SetEndAt(day.Add(time.Duration(slot.EndTime) * time.Minute))
		event.SetSummary(fmt.Sprintf("%v %v", subject.Name, group.Name))
		event.SetLocation(slot.Location)
		event.SetDescription(fmt.Sprintf("%v (%v credits)", subject.Short, group.Credits))
		event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;COUNT=%d", weeks))
	}
	return calendar.Serialize(), nil
}

// firstOccurrence returns midnight of the first day on or after start that falls on day
func firstOccurrence(start time.Time, day model.WeekDay) time.Time {
	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	offset := (int(weekdayNumbers[day]) - int(midnight.Weekday()) + 7) % 7
	return midnight.AddDate(0, 0, offset)
}
