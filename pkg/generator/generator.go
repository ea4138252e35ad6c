package generator

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/limaJavier/classplanner/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

const (
	DefaultUsers    = 10
	DefaultSubjects = 40
	DefaultName     = "Randomly-created State"
	Degree          = "Informática"

	// MaxAttempts bounds the random start times tried for a single slot
	MaxAttempts = 1000
	// MaxPasses bounds how many times group placement starts over
	MaxPasses = 20

	shortSpan = 50
	longSpan  = 110
	firstHour = 9
	lastHour  = 19
)

var (
	ErrNoTeachers = errors.New("generator: no teachers to balance credits against")

	creditChoices = []float64{6, 6, 6, 6, 4.5, 4.5, 3}
)

// Observer is notified of placement progress
type Observer interface {
	SlotPlaced(attempts int)
	PassFailed()
}

type noopObserver struct{}

func (noopObserver) SlotPlaced(int) {}
func (noopObserver) PassFailed()    {}

type Options struct {
	Name     string
	Users    int // one admin plus Users-1 teachers
	Subjects int
	// CreditPlan fixes subject credits, cycling through the plan; random when empty
	CreditPlan   []float64
	Labs         []string
	LectureHalls []string
	Random       *rand.Rand
	Logger       *zap.Logger
	Observer     Observer
}

type Phase int

const (
	Placing Phase = iota
	RetryingSubjectPass
	Exhausted
	Done
)

func (phase Phase) String() string {
	switch phase {
	case Placing:
		return "placing"
	case RetryingSubjectPass:
		return "retrying"
	case Exhausted:
		return "exhausted"
	case Done:
		return "done"
	}
	return fmt.Sprintf("phase(%d)", int(phase))
}

// Generator invents a consistent random timetable: users, subjects, and for every subject lecture and lab groups
// placed in rooms without overlaps. Groups are left without teachers
type Generator struct {
	options  Options
	random   *rand.Rand
	logger   *zap.Logger
	observer Observer

	state        model.State
	nextID       uint64
	firstGroupID uint64
	availability *Availability

	phase  Phase
	passes int
}

func New(options Options) (*Generator, error) {
	if options.Users < 0 || options.Subjects < 0 {
		return nil, fmt.Errorf("%w: negative entity counts (%d users, %d subjects)", model.ErrInvalid, options.Users, options.Subjects)
	}
	if lo.SomeBy(options.CreditPlan, func(credits float64) bool { return credits <= 0 }) {
		return nil, fmt.Errorf("%w: credit plan %v", model.ErrInvalid, options.CreditPlan)
	}
	if options.Name == "" {
		options.Name = DefaultName
	}
	if options.Users == 0 {
		options.Users = DefaultUsers
	}
	if options.Subjects == 0 {
		options.Subjects = DefaultSubjects
	}
	if len(options.Labs) == 0 {
		options.Labs = Labs
	}
	if len(options.LectureHalls) == 0 {
		options.LectureHalls = LectureHalls
	}

	generator := &Generator{
		options:  options,
		random:   options.Random,
		logger:   options.Logger,
		observer: options.Observer,
		nextID:   1,
		phase:    Placing,
	}
	if generator.random == nil {
		generator.random = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if generator.logger == nil {
		generator.logger = zap.NewNop()
	}
	if generator.observer == nil {
		generator.observer = noopObserver{}
	}
	return generator, nil
}

// Populate generates a State with the given options
func Populate(options Options) (model.State, error) {
	generator, err := New(options)
	if err != nil {
		return model.State{}, err
	}
	return generator.Run()
}

func (generator *Generator) Phase() Phase {
	return generator.phase
}

func (generator *Generator) Passes() int {
	return generator.passes
}

// Run generates the whole State. A pass that cannot place a slot is thrown away together with every group and slot
// placed so far; after MaxPasses failed passes Run gives up with model.ErrExhaustedRetries. Every call starts over
// from a fresh State, drawing from the same random source
func (generator *Generator) Run() (model.State, error) {
	generator.phase = Placing
	generator.passes = 0
	generator.nextID = 1
	generator.state = model.State{Name: generator.options.Name}
	generator.state.Users = generator.randomUsers()
	generator.state.Subjects = generator.randomSubjects()
	generator.firstGroupID = generator.nextID
	generator.availability = NewAvailability(generator.options.Labs, generator.options.LectureHalls)

	for {
		switch generator.phase {
		case Placing:
			err := generator.placeGroups()
			if err == nil {
				generator.phase = Done
				continue
			}
			if !errors.Is(err, model.ErrExhaustedRetries) && !errors.Is(err, ErrNoAvailability) {
				return model.State{}, err
			}
			generator.passes++
			generator.observer.PassFailed()
			generator.logger.Warn("group placement failed",
				zap.Error(err),
				zap.Int("pass", generator.passes),
				zap.Int("slots", len(generator.state.Slots)),
				zap.Int("availableHours", generator.availability.Total()),
			)
			if generator.passes >= MaxPasses {
				generator.phase = Exhausted
			} else {
				generator.phase = RetryingSubjectPass
			}

		case RetryingSubjectPass:
			generator.resetPass()
			generator.phase = Placing

		case Exhausted:
			return model.State{}, fmt.Errorf("%w: %d passes could not place every group; add rooms or reduce subjects",
				model.ErrExhaustedRetries, generator.passes)

		case Done:
			if err := generator.balanceCredits(); err != nil {
				return model.State{}, err
			}
			generator.logger.Info("state generated",
				zap.String("name", generator.state.Name),
				zap.Int("users", len(generator.state.Users)),
				zap.Int("subjects", len(generator.state.Subjects)),
				zap.Int("groups", len(generator.state.Groups)),
				zap.Int("slots", len(generator.state.Slots)),
				zap.Int("failedPasses", generator.passes),
			)
			return generator.state, nil
		}
	}
}

func (generator *Generator) allocate() uint64 {
	id := generator.nextID
	generator.nextID++
	return id
}

//** Users and subjects

func (generator *Generator) randomUsers() []model.User {
	names := newNamer("")
	users := make([]model.User, 0, generator.options.Users)
	for i := range generator.options.Users {
		user := generator.randomUser(names)
		if i == 0 {
			user.Role = model.Admin
		}
		users = append(users, user)
	}
	return users
}

func (generator *Generator) randomUser(names *namer) model.User {
	firstName := randomChoice(generator.random, FirstNames)
	lastName := randomChoice(generator.random, LastNames) + " " + randomChoice(generator.random, LastNames)
	return model.User{
		ID:         generator.allocate(),
		Role:       model.Teacher,
		UserName:   names.unique(UserName(firstName, lastName)),
		Token:      randomString(generator.random, 16, alphanumeric),
		FirstName:  firstName,
		LastName:   lastName,
		MaxCredits: float64(randomInRange(generator.random, 12, 24)),
	}
}

func (generator *Generator) randomSubjects() []model.Subject {
	names := newNamer(" ")
	subjects := make([]model.Subject, 0, generator.options.Subjects)
	for i := range generator.options.Subjects {
		subjects = append(subjects, generator.randomSubject(i, names))
	}

	// Repeated titles become numbered editions: "Redes", "Redes 1" turn into "Redes I", "Redes II"
	if repeated := names.repeated(); len(repeated) > 0 {
		for i := range subjects {
			if name, renamed := romanize(subjects[i].Name, repeated); renamed {
				subjects[i].Name = name
				subjects[i].Short = Initials(name)
			}
		}
	}
	return subjects
}

func (generator *Generator) randomSubject(index int, names *namer) model.Subject {
	name := names.unique(strings.TrimSpace(randomChoice(generator.random, SubjectNames)))
	credits := randomChoice(generator.random, creditChoices)
	if plan := generator.options.CreditPlan; len(plan) > 0 {
		credits = plan[index%len(plan)]
	}
	codes := make([]string, randomInRange(generator.random, 2, 4))
	for i := range codes {
		codes[i] = randomString(generator.random, 6, digits)
	}
	return model.Subject{
		ID:       generator.allocate(),
		Name:     name,
		Short:    Initials(name),
		Degree:   Degree,
		Credits:  credits,
		Semester: randomChoice(generator.random, model.Semesters),
		Codes:    codes,
	}
}

//** Groups and slots

func (generator *Generator) placeGroups() error {
	for i := range generator.state.Subjects {
		subject := &generator.state.Subjects[i]
		groups := randomInRange(generator.random, 1, 5)
		if strings.Contains(strings.ToLower(subject.Name), "unda") {
			groups += 3
		}
		generator.logger.Debug("placing groups",
			zap.String("subject", subject.Name),
			zap.Int("groups", groups),
			zap.Int("remainingSubjects", len(generator.state.Subjects)-i),
			zap.Int("availableHours", generator.availability.Total()),
		)
		if err := generator.addGroups(subject, groups); err != nil {
			return err
		}
	}
	return nil
}

// addGroups creates count lecture/lab group pairs named "A"/"A1", "B"/"B1", ... and books their weekly slots
func (generator *Generator) addGroups(subject *model.Subject, count int) error {
	for i := range count {
		letter := string(rune('A' + i))
		lecture := model.Group{ID: generator.allocate(), Name: letter, SubjectID: subject.ID}
		lab := model.Group{ID: generator.allocate(), Name: letter + "1", SubjectID: subject.ID, IsLab: true}

		labChoice, err := generator.availability.Choose(LabRoom, subject.Semester, false, "")
		if err != nil {
			return err
		}

		switch subject.Credits {
		case 4.5: // 1h lab, two 1h lectures
			lecture.Credits, lab.Credits = 3, 1.5
			lectureChoice, err := generator.availability.Choose(LectureRoom, subject.Semester, true, labChoice.WeekDay)
			if err != nil {
				return err
			}
			if err := generator.reserveSlot(&lab, subject.Semester, labChoice.WeekDay, false, labChoice.Location, lectureChoice.Location); err != nil {
				return err
			}
			if err := generator.reserveSlot(&lecture, subject.Semester, lectureChoice.WeekDay, false, lectureChoice.Location, ""); err != nil {
				return err
			}
			if err := generator.reserveSlot(&lecture, subject.Semester, lectureChoice.OtherWeekDay, false, lectureChoice.Location, ""); err != nil {
				return err
			}

		case 6: // 2h lab, one 2h lecture
			lecture.Credits, lab.Credits = 4.5, 1.5
			lectureChoice, err := generator.availability.Choose(LectureRoom, subject.Semester, false, labChoice.WeekDay)
			if err != nil {
				return err
			}
			if err := generator.reserveSlot(&lab, subject.Semester, labChoice.WeekDay, true, labChoice.Location, lectureChoice.Location); err != nil {
				return err
			}
			if err := generator.reserveSlot(&lecture, subject.Semester, lectureChoice.WeekDay, true, lectureChoice.Location, ""); err != nil {
				return err
			}

		default: // 1h lab, one 1h lecture
			lecture.Credits, lab.Credits = 1.5, 1.5
			lectureChoice, err := generator.availability.Choose(LectureRoom, subject.Semester, false, labChoice.WeekDay)
			if err != nil {
				return err
			}
			if err := generator.reserveSlot(&lab, subject.Semester, labChoice.WeekDay, false, labChoice.Location, lectureChoice.Location); err != nil {
				return err
			}
			if err := generator.reserveSlot(&lecture, subject.Semester, lectureChoice.WeekDay, false, lectureChoice.Location, ""); err != nil {
				return err
			}
		}

		subject.Groups = append(subject.Groups, lecture.ID, lab.ID)
		generator.state.Groups = append(generator.state.Groups, lecture, lab)
	}
	return nil
}

// reserveSlot books a weekly slot for group at a random start hour. When altLocation is set (labs) a second slot
// in that lecture hall is booked at the same time. Start hours are redrawn until neither slot overlaps an existing
// one; after MaxAttempts draws the pass is abandoned
func (generator *Generator) reserveSlot(group *model.Group, semester model.Semester, day model.WeekDay, long bool, location, altLocation string) error {
	span, hours := uint64(shortSpan), 1
	if long {
		span, hours = longSpan, 2
	}

	var candidate, altCandidate model.Slot
	for attempt := 1; ; attempt++ {
		if attempt > MaxAttempts {
			return fmt.Errorf("%w: no free %d-minute slot in %v on %v of %v after %d attempts",
				model.ErrExhaustedRetries, span, location, day, semester, MaxAttempts)
		}

		start := uint64(firstHour+generator.random.IntN(lastHour-firstHour)) * 60
		candidate = model.Slot{
			ID:        generator.nextID,
			WeekDay:   day,
			StartTime: start,
			EndTime:   start + span,
			Location:  location,
			Semester:  semester,
			GroupID:   group.ID,
		}
		if _, conflict := model.FirstConflict(candidate, generator.state.Slots, true); conflict {
			continue
		}
		if altLocation != "" {
			altCandidate = candidate
			altCandidate.ID = candidate.ID + 1
			altCandidate.Location = altLocation
			if _, conflict := model.FirstConflict(altCandidate, generator.state.Slots, true); conflict {
				continue
			}
		}
		generator.observer.SlotPlaced(attempt)
		break
	}

	kind := LectureRoom
	if altLocation != "" {
		kind = LabRoom
	}
	candidate.ID = generator.allocate()
	generator.state.Slots = append(generator.state.Slots, candidate)
	group.Slots = append(group.Slots, candidate.ID)
	generator.availability.Consume(AvailabilityKey{kind, semester, location, day}, hours)

	if altLocation != "" {
		altCandidate.ID = generator.allocate()
		generator.state.Slots = append(generator.state.Slots, altCandidate)
		group.Slots = append(group.Slots, altCandidate.ID)
		generator.availability.Consume(AvailabilityKey{LectureRoom, semester, altLocation, day}, hours)
	}
	return nil
}

// resetPass drops every group and slot and restores room availability. Users and subjects are kept
func (generator *Generator) resetPass() {
	for i := range generator.state.Subjects {
		generator.state.Subjects[i].Groups = nil
	}
	generator.state.Groups = nil
	generator.state.Slots = nil
	generator.nextID = generator.firstGroupID
	generator.availability = NewAvailability(generator.options.Labs, generator.options.LectureHalls)
}

//** Credits

// balanceCredits nudges teachers' MaxCredits one unit at a time until their sum is within half a credit of the
// credits offered by all subjects
func (generator *Generator) balanceCredits() error {
	users := generator.state.Users
	teachers := lo.FilterMap(users, func(user model.User, i int) (int, bool) {
		return i, user.Role == model.Teacher
	})
	subjectCredits := lo.SumBy(generator.state.Subjects, func(subject model.Subject) float64 { return subject.Credits })
	teacherCredits := lo.SumBy(teachers, func(i int) float64 { return users[i].MaxCredits })
	before := teacherCredits

	for math.Abs(subjectCredits-teacherCredits) > 0.5 {
		if len(teachers) == 0 {
			return fmt.Errorf("%w: %v subject credits cannot be covered", ErrNoTeachers, subjectCredits)
		}
		if subjectCredits > teacherCredits {
			users[randomChoice(generator.random, teachers)].MaxCredits++
			teacherCredits++
			continue
		}
		withCredits := lo.Filter(teachers, func(i int, _ int) bool { return users[i].MaxCredits >= 1 })
		if len(withCredits) == 0 {
			break
		}
		users[randomChoice(generator.random, withCredits)].MaxCredits--
		teacherCredits--
	}

	generator.logger.Debug("teacher credits balanced",
		zap.Float64("subjectCredits", subjectCredits),
		zap.Float64("teacherCreditsBefore", before),
		zap.Float64("teacherCredits", teacherCredits),
	)
	return nil
}
