package export

import "github.com/limaJavier/classplanner/pkg/model"

const (
	teacherID   uint64 = 2
	idleID      uint64 = 3
	networksID  uint64 = 10
	databasesID uint64 = 11
	lectureID   uint64 = 20
	labID       uint64 = 21
	dbLectureID uint64 = 22
)

// timetable has Juan teaching the Networks lecture on Monday and its lab on Tuesday, where the lab also holds a
// lecture hall fallback. The Databases lecture on Monday at 10:00 has no teacher
func timetable() model.State {
	return model.State{
		Name: "export",
		Users: []model.User{
			{ID: 1, Role: model.Admin, UserName: "admin", FirstName: "Ana", LastName: "Garcia"},
			{ID: teacherID, Role: model.Teacher, UserName: "jlopez", FirstName: "Juan", LastName: "Lopez", MaxCredits: 18, AssignedCredits: 6, Groups: []uint64{lectureID, labID}},
			{ID: idleID, Role: model.Teacher, UserName: "mruiz", FirstName: "Marta", LastName: "Ruiz", MaxCredits: 20},
		},
		Subjects: []model.Subject{
			{ID: networksID, Name: "Redes", Short: "R", Degree: "Informática", Credits: 6, Semester: model.Fall, Codes: []string{"123456"}, Groups: []uint64{lectureID, labID}},
			{ID: databasesID, Name: "Bases de Datos", Short: "BD", Degree: "Informática", Credits: 3, Semester: model.Fall, Codes: []string{"654321"}, Groups: []uint64{dbLectureID}},
		},
		Groups: []model.Group{
			{ID: lectureID, Name: "A", SubjectID: networksID, TeacherID: teacherID, Credits: 4.5, Slots: []uint64{30}},
			{ID: labID, Name: "A1", SubjectID: networksID, TeacherID: teacherID, Credits: 1.5, IsLab: true, Slots: []uint64{31, 32}},
			{ID: dbLectureID, Name: "A", SubjectID: databasesID, Credits: 1.5, Slots: []uint64{33}},
		},
		Slots: []model.Slot{
			{ID: 30, WeekDay: model.Monday, StartTime: 9 * 60, EndTime: 10*60 + 50, Location: "Aula 1", Semester: model.Fall, GroupID: lectureID},
			{ID: 31, WeekDay: model.Tuesday, StartTime: 9 * 60, EndTime: 10*60 + 50, Location: "Laboratorio 1", Semester: model.Fall, GroupID: labID},
			{ID: 32, WeekDay: model.Tuesday, StartTime: 9 * 60, EndTime: 10*60 + 50, Location: "Aula 2", Semester: model.Fall, GroupID: labID},
			{ID: 33, WeekDay: model.Monday, StartTime: 10 * 60, EndTime: 10*60 + 50, Location: "Aula 3", Semester: model.Fall, GroupID: dbLectureID},
		},
	}
}
