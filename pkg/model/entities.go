package model

import (
	"fmt"
	"slices"
)

type Role string

const (
	Admin   Role = "admin"
	Teacher Role = "teacher"
)

type WeekDay string

const (
	Monday    WeekDay = "mon"
	Tuesday   WeekDay = "tue"
	Wednesday WeekDay = "wed"
	Thursday  WeekDay = "thu"
	Friday    WeekDay = "fri"
)

// WeekDays lists the teaching days in calendar order
var WeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday}

type Semester string

const (
	Fall   Semester = "fall"
	Spring Semester = "spring"
)

var Semesters = []Semester{Fall, Spring}

type Kind string

const (
	UserKind    Kind = "user"
	SubjectKind Kind = "subject"
	GroupKind   Kind = "group"
	SlotKind    Kind = "slot"
)

type User struct {
	ID              uint64   `json:"id" mapstructure:"id"`
	Role            Role     `json:"userRole" mapstructure:"userRole"`
	UserName        string   `json:"userName" mapstructure:"userName"`
	Token           string   `json:"token" mapstructure:"token"`
	FirstName       string   `json:"firstName" mapstructure:"firstName"`
	LastName        string   `json:"lastName" mapstructure:"lastName"`
	MaxCredits      float64  `json:"maxCredits" mapstructure:"maxCredits"`
	AssignedCredits float64  `json:"assignedCredits" mapstructure:"assignedCredits"`
	Groups          []uint64 `json:"groups" mapstructure:"groups"`
}

type Subject struct {
	ID       uint64   `json:"id" mapstructure:"id"`
	Name     string   `json:"name" mapstructure:"name"`
	Short    string   `json:"short" mapstructure:"short"`
	Degree   string   `json:"degree" mapstructure:"degree"`
	Credits  float64  `json:"credits" mapstructure:"credits"`
	Semester Semester `json:"semester" mapstructure:"semester"`
	Codes    []string `json:"codes" mapstructure:"codes"`
	Groups   []uint64 `json:"groups" mapstructure:"groups"`
}

// Group is either a lecture or a lab cohort of a subject. SubjectID and TeacherID are 0 when unset
type Group struct {
	ID        uint64   `json:"id" mapstructure:"id"`
	Name      string   `json:"name" mapstructure:"name"`
	SubjectID uint64   `json:"subjectId" mapstructure:"subjectId"`
	Credits   float64  `json:"credits" mapstructure:"credits"`
	IsLab     bool     `json:"isLab" mapstructure:"isLab"`
	Slots     []uint64 `json:"slots" mapstructure:"slots"`
	TeacherID uint64   `json:"teacherId" mapstructure:"teacherId"`
}

// Slot is a weekly occurrence of a group. StartTime and EndTime are minutes since midnight
type Slot struct {
	ID        uint64   `json:"id" mapstructure:"id"`
	WeekDay   WeekDay  `json:"weekDay" mapstructure:"weekDay"`
	StartTime uint64   `json:"startTime" mapstructure:"startTime"`
	EndTime   uint64   `json:"endTime" mapstructure:"endTime"`
	Location  string   `json:"location" mapstructure:"location"`
	Semester  Semester `json:"semester" mapstructure:"semester"`
	GroupID   uint64   `json:"groupId" mapstructure:"groupId"`
}

type State struct {
	Name     string    `json:"name" mapstructure:"name"`
	Users    []User    `json:"users" mapstructure:"users"`
	Subjects []Subject `json:"subjects" mapstructure:"subjects"`
	Groups   []Group   `json:"groups" mapstructure:"groups"`
	Slots    []Slot    `json:"slots" mapstructure:"slots"`
}

func (role Role) Valid() bool {
	return role == Admin || role == Teacher
}

func (day WeekDay) Valid() bool {
	return slices.Contains(WeekDays, day)
}

func (semester Semester) Valid() bool {
	return semester == Fall || semester == Spring
}

func ParseWeekDay(value string) (WeekDay, error) {
	day := WeekDay(value)
	if !day.Valid() {
		return "", fmt.Errorf("unknown weekday %q", value)
	}
	return day, nil
}

func ParseSemester(value string) (Semester, error) {
	semester := Semester(value)
	if !semester.Valid() {
		return "", fmt.Errorf("unknown semester %q", value)
	}
	return semester, nil
}

// Clock renders minutes since midnight as HH:MM
func Clock(minutes uint64) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

//** Copies

func (user User) Clone() User {
	user.Groups = slices.Clone(user.Groups)
	return user
}

func (subject Subject) Clone() Subject {
	subject.Codes = slices.Clone(subject.Codes)
	subject.Groups = slices.Clone(subject.Groups)
	return subject
}

func (group Group) Clone() Group {
	group.Slots = slices.Clone(group.Slots)
	return group
}

func (slot Slot) Clone() Slot {
	return slot
}

func (state State) Clone() State {
	clone := State{
		Name:     state.Name,
		Users:    make([]User, 0, len(state.Users)),
		Subjects: make([]Subject, 0, len(state.Subjects)),
		Groups:   make([]Group, 0, len(state.Groups)),
		Slots:    make([]Slot, 0, len(state.Slots)),
	}
	for _, user := range state.Users {
		clone.Users = append(clone.Users, user.Clone())
	}
	for _, subject := range state.Subjects {
		clone.Subjects = append(clone.Subjects, subject.Clone())
	}
	for _, group := range state.Groups {
		clone.Groups = append(clone.Groups, group.Clone())
	}
	clone.Slots = append(clone.Slots, state.Slots...)
	return clone
}

//** Structural equality. A nil list equals an empty one

func (user User) Equal(other User) bool {
	return user.ID == other.ID &&
		user.Role == other.Role &&
		user.UserName == other.UserName &&
		user.Token == other.Token &&
		user.FirstName == other.FirstName &&
		user.LastName == other.LastName &&
		user.MaxCredits == other.MaxCredits &&
		user.AssignedCredits == other.AssignedCredits &&
		slices.Equal(user.Groups, other.Groups)
}

func (subject Subject) Equal(other Subject) bool {
	return subject.ID == other.ID &&
		subject.Name == other.Name &&
		subject.Short == other.Short &&
		subject.Degree == other.Degree &&
		subject.Credits == other.Credits &&
		subject.Semester == other.Semester &&
		slices.Equal(subject.Codes, other.Codes) &&
		slices.Equal(subject.Groups, other.Groups)
}

func (group Group) Equal(other Group) bool {
	return group.ID == other.ID &&
		group.Name == other.Name &&
		group.SubjectID == other.SubjectID &&
		group.Credits == other.Credits &&
		group.IsLab == other.IsLab &&
		group.TeacherID == other.TeacherID &&
		slices.Equal(group.Slots, other.Slots)
}

func (slot Slot) Equal(other Slot) bool {
	return slot == other
}
