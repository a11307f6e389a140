package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"mentorhub/models"
	"mentorhub/services/availability"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	nextID   int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*models.Booking{}}
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	f.nextID++
	if b.ID == "" {
		b.ID = fmt.Sprintf("b%d", f.nextID)
	}
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}
func (f *fakeBookingRepo) Update(ctx context.Context, b *models.Booking) error {
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}
func (f *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}
func (f *fakeBookingRepo) GetByMenteeID(ctx context.Context, menteeID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.MenteeID == menteeID {
			out = append(out, *b)
		}
	}
	return out, nil
}
func (f *fakeBookingRepo) GetByMentorAndDate(ctx context.Context, mentorID, date string) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ExistsForSlot(ctx context.Context, mentorID, date, startTime string) (bool, error) {
	for _, b := range f.bookings {
		if b.MentorID == mentorID && b.Date == date && b.StartTime == startTime && b.Status != models.BookingCancelled {
			return true, nil
		}
	}
	return false, nil
}
func (f *fakeBookingRepo) StatsByMentor(ctx context.Context) ([]models.MentorBookingStats, error) {
	return nil, nil
}
func (f *fakeBookingRepo) UpcomingCount(ctx context.Context, from string) (int64, error) {
	return 0, nil
}

type fakeMentorRepo struct {
	mentor *models.Mentor
}

func (f *fakeMentorRepo) GetByID(ctx context.Context, id string) (*models.Mentor, error) {
	return f.mentor, nil
}
func (f *fakeMentorRepo) GetByEmail(ctx context.Context, email string) (*models.Mentor, error) {
	return nil, nil
}
func (f *fakeMentorRepo) GetAll(ctx context.Context, projection bson.M) ([]models.Mentor, error) {
	return nil, nil
}
func (f *fakeMentorRepo) GetByExpertise(ctx context.Context, tags []string) ([]models.Mentor, error) {
	return nil, nil
}
func (f *fakeMentorRepo) Create(ctx context.Context, mentor *models.Mentor) error { return nil }
func (f *fakeMentorRepo) Update(ctx context.Context, mentor *models.Mentor) error { return nil }
func (f *fakeMentorRepo) Delete(ctx context.Context, id string) error             { return nil }

type fakeTimeslotRepo struct {
	recurring []models.TimeSlot
	specific  map[string][]models.TimeSlot
	upserts   []models.TimeSlot
}

func (f *fakeTimeslotRepo) ReplaceForMentor(ctx context.Context, mentorID string, slots []models.TimeSlot) ([]string, error) {
	return nil, nil
}
func (f *fakeTimeslotRepo) UpsertSpecific(ctx context.Context, slot models.TimeSlot) error {
	if f.specific == nil {
		f.specific = map[string][]models.TimeSlot{}
	}
	f.upserts = append(f.upserts, slot)
	key := slot.Date
	for i, existing := range f.specific[key] {
		if existing.StartTime == slot.StartTime && existing.EndTime == slot.EndTime {
			f.specific[key][i] = slot
			return nil
		}
	}
	f.specific[key] = append(f.specific[key], slot)
	return nil
}
func (f *fakeTimeslotRepo) DeleteByID(ctx context.Context, mentorID, slotID string) error { return nil }
func (f *fakeTimeslotRepo) GetByMentorID(ctx context.Context, mentorID string) ([]models.TimeSlot, error) {
	return nil, nil
}
func (f *fakeTimeslotRepo) GetRecurring(ctx context.Context, mentorID string) ([]models.TimeSlot, error) {
	return f.recurring, nil
}
func (f *fakeTimeslotRepo) GetSpecificByDate(ctx context.Context, mentorID, date string) ([]models.TimeSlot, error) {
	return f.specific[date], nil
}
func (f *fakeTimeslotRepo) CountOpenRecurring(ctx context.Context, mentorID string) (int64, error) {
	return 0, nil
}

type fakeEventTypeRepo struct {
	eventTypes []models.EventType
}

func (f *fakeEventTypeRepo) Create(ctx context.Context, et *models.EventType) error { return nil }
func (f *fakeEventTypeRepo) Update(ctx context.Context, et *models.EventType) error { return nil }
func (f *fakeEventTypeRepo) Delete(ctx context.Context, mentorID, id string) error  { return nil }
func (f *fakeEventTypeRepo) GetByID(ctx context.Context, mentorID, id string) (*models.EventType, error) {
	for _, et := range f.eventTypes {
		if et.ID == id {
			cp := et
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeEventTypeRepo) GetByMentorID(ctx context.Context, mentorID string) ([]models.EventType, error) {
	return f.eventTypes, nil
}
func (f *fakeEventTypeRepo) GetActiveByMentorID(ctx context.Context, mentorID string) ([]models.EventType, error) {
	return f.eventTypes, nil
}

// newTestService wires a booking service over a local-path mentor with one
// recurring Monday 09:00-10:00 slot and a free 60-minute event type.
func newTestService() (*DefaultService, *fakeBookingRepo, *fakeTimeslotRepo) {
	bookings := newFakeBookingRepo()
	timeslots := &fakeTimeslotRepo{
		recurring: []models.TimeSlot{
			{ID: "r1", MentorID: "m1", Day: "Monday", StartTime: "09:00", EndTime: "10:00", IsAvailable: true, Type: models.SlotRecurring},
		},
	}
	eventTypes := &fakeEventTypeRepo{eventTypes: []models.EventType{
		{ID: "et-1", MentorID: "m1", Title: "Session", Length: 60},
		{ID: "et-30", MentorID: "m1", Title: "Intro call", Length: 30},
	}}
	avail := &availability.Service{
		Timeslots:  timeslots,
		EventTypes: eventTypes,
		Grid:       availability.DefaultGridConfig(),
		Logger:     zap.NewNop(),
	}
	svc := &DefaultService{
		Bookings:     bookings,
		Mentors:      &fakeMentorRepo{mentor: &models.Mentor{ID: "m1", Status: "active"}},
		Timeslots:    timeslots,
		Availability: avail,
		Logger:       zap.NewNop(),
	}
	return svc, bookings, timeslots
}

func TestCreateBooking_PendingUntilConfirmed(t *testing.T) {
	svc, _, timeslots := newTestService()

	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-04", StartTime: "09:00"}
	b, err := svc.Create(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Status != models.BookingPending {
		t.Fatalf("new booking should be pending, got %q", b.Status)
	}
	if b.EndTime != "10:00" {
		t.Fatalf("end time should come from the event type length, got %q", b.EndTime)
	}
	if len(timeslots.upserts) != 0 {
		t.Fatalf("creating a booking must not consume the slot yet")
	}
}

func TestCreateBooking_UnavailableSlotRejected(t *testing.T) {
	svc, _, _ := newTestService()

	// Tuesday has no recurring pattern at all.
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-05", StartTime: "09:00"}
	_, err := svc.Create(context.Background(), "u1", req)

	var conflict *SlotConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SlotConflictError, got %v", err)
	}
}

func TestCreateBooking_DoubleClaimRejected(t *testing.T) {
	svc, _, _ := newTestService()
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-04", StartTime: "09:00"}

	if _, err := svc.Create(context.Background(), "u1", req); err != nil {
		t.Fatalf("first claim should succeed: %v", err)
	}
	_, err := svc.Create(context.Background(), "u2", req)
	var conflict *SlotConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected SlotConflictError for the second claim, got %v", err)
	}
}

func TestConfirmBooking_ConsumesSlot(t *testing.T) {
	svc, bookings, timeslots := newTestService()
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-04", StartTime: "09:00"}

	created, err := svc.Create(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	confirmed, err := svc.Confirm(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.Status != models.BookingConfirmed {
		t.Fatalf("expected confirmed status, got %q", confirmed.Status)
	}

	if len(timeslots.upserts) != 1 {
		t.Fatalf("confirmation should write exactly one specific override, got %d", len(timeslots.upserts))
	}
	override := timeslots.upserts[0]
	if override.Type != models.SlotSpecific || override.IsAvailable {
		t.Fatalf("override should be a closed specific slot: %+v", override)
	}

	// The consumed slot now resolves unavailable, so a second confirm
	// attempt by another booking fails the re-check.
	stored, _ := bookings.GetByID(context.Background(), created.ID)
	if stored.Status != models.BookingConfirmed {
		t.Fatalf("stored booking not updated: %+v", stored)
	}

	mentor := models.Mentor{ID: "m1"}
	open, err := svc.Availability.CheckSlot(context.Background(), mentor, "et-1", "2024-03-04", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Fatalf("confirmed slot should resolve unavailable")
	}
}

// A booking shorter than the mentor's authored slot must consume the whole
// slot window. An override with the booking's own end time would not share
// the recurring slot's start-end window, so the merge would keep both and
// the slot would still resolve available.
func TestConfirmBooking_ShortEventConsumesFullSlotWindow(t *testing.T) {
	svc, _, timeslots := newTestService()
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-30", Date: "2024-03-04", StartTime: "09:00"}

	created, err := svc.Create(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.EndTime != "09:30" {
		t.Fatalf("booking end time should follow the event length, got %q", created.EndTime)
	}

	if _, err := svc.Confirm(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	override := timeslots.upserts[0]
	if override.EndTime != "10:00" {
		t.Fatalf("override should carry the authored slot window, got %s-%s", override.StartTime, override.EndTime)
	}

	mentor := models.Mentor{ID: "m1"}
	open, err := svc.Availability.CheckSlot(context.Background(), mentor, "et-30", "2024-03-04", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if open {
		t.Fatalf("consumed slot should resolve unavailable")
	}

	// Cancellation must release the same document.
	if _, err := svc.Cancel(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := timeslots.upserts[len(timeslots.upserts)-1]
	if last.EndTime != "10:00" || !last.IsAvailable {
		t.Fatalf("release should reopen the authored slot window: %+v", last)
	}
	open, err = svc.Availability.CheckSlot(context.Background(), mentor, "et-30", "2024-03-04", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatalf("released slot should resolve available again")
	}
}

func TestConfirmBooking_WrongMentee(t *testing.T) {
	svc, _, _ := newTestService()
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-04", StartTime: "09:00"}

	created, err := svc.Create(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), "someone-else", created.ID); err == nil {
		t.Fatalf("confirming another mentee's booking must fail")
	}
}

func TestCancelBooking_ReleasesConfirmedSlot(t *testing.T) {
	svc, _, timeslots := newTestService()
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-04", StartTime: "09:00"}

	created, err := svc.Create(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Confirm(context.Background(), "u1", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled status, got %q", cancelled.Status)
	}

	// The release overwrote the closed override with an open one.
	last := timeslots.upserts[len(timeslots.upserts)-1]
	if !last.IsAvailable {
		t.Fatalf("cancellation should release the slot: %+v", last)
	}

	mentor := models.Mentor{ID: "m1"}
	open, err := svc.Availability.CheckSlot(context.Background(), mentor, "et-1", "2024-03-04", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !open {
		t.Fatalf("released slot should resolve available again")
	}
}

func TestCancelBooking_StrangerRejected(t *testing.T) {
	svc, _, _ := newTestService()
	req := models.BookingRequest{MentorID: "m1", EventTypeID: "et-1", Date: "2024-03-04", StartTime: "09:00"}

	created, err := svc.Create(context.Background(), "u1", req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), "u2", created.ID); err == nil {
		t.Fatalf("a third party must not cancel the booking")
	}
}
