package app_test

import (
	"context"
	"testing"

	"wellnesshub/internal/adapter/memory"
	"wellnesshub/internal/app"
	"wellnesshub/internal/domain"
)

func TestCommunityService_SeedsDefaults(t *testing.T) {
	svc := app.NewCommunityService(context.Background(), memory.New())

	if len(svc.Events()) == 0 {
		t.Error("expected seeded events")
	}
	if len(svc.Discussions()) != 3 {
		t.Errorf("expected 3 seeded discussion topics, got %d", len(svc.Discussions()))
	}
	if len(svc.PendingRequests()) != 0 {
		t.Error("pending queue should start empty")
	}
}

func TestCommunityService_SubmitThenApprove(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	req := svc.Submit(ctx, domain.EventDetails{Title: "Evening Run Club", Location: "Track"}, "Priya")
	if req.Status != domain.RequestPending {
		t.Errorf("Status = %q, want %q", req.Status, domain.RequestPending)
	}
	if req.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be stamped")
	}

	event, ok := svc.Approve(ctx, req.ID)
	if !ok {
		t.Fatal("approval of a queued request failed")
	}
	if event.ID != req.ID {
		t.Errorf("approval must keep the request id, got %q want %q", event.ID, req.ID)
	}
	if event.CreatedBy != "Priya" {
		t.Errorf("CreatedBy = %q, want the original submitter", event.CreatedBy)
	}
	if event.ApprovedAt.IsZero() {
		t.Error("expected ApprovedAt to be stamped")
	}

	// The id must now live in exactly one list.
	for _, p := range svc.PendingRequests() {
		if p.ID == req.ID {
			t.Error("approved request still in the pending queue")
		}
	}
	if svc.Events()[0].ID != req.ID {
		t.Error("approved event should be first in the published list")
	}
}

func TestCommunityService_ApproveTwiceCannotDuplicate(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	req := svc.Submit(ctx, domain.EventDetails{Title: "Chess Night"}, "")
	if _, ok := svc.Approve(ctx, req.ID); !ok {
		t.Fatal("first approval failed")
	}
	if _, ok := svc.Approve(ctx, req.ID); ok {
		t.Fatal("second approval of the same id should be a no-op")
	}

	count := 0
	for _, e := range svc.Events() {
		if e.ID == req.ID {
			count++
		}
	}
	if count != 1 {
		t.Errorf("event published %d times, want 1", count)
	}
}

func TestCommunityService_RejectDropsRequest(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	req := svc.Submit(ctx, domain.EventDetails{Title: "Karaoke"}, "Sam")
	if !svc.Reject(ctx, req.ID) {
		t.Fatal("rejection of a queued request failed")
	}
	if svc.Reject(ctx, req.ID) {
		t.Error("repeated rejection should be a no-op")
	}
	if len(svc.PendingRequests()) != 0 {
		t.Error("rejected request still queued")
	}
	for _, e := range svc.Events() {
		if e.ID == req.ID {
			t.Error("rejected request must never be published")
		}
	}
}

func TestCommunityService_SubmitDefaultsSubmitter(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	req := svc.Submit(ctx, domain.EventDetails{Title: "Study Jam"}, "")
	if req.SubmittedBy != "Student Host" {
		t.Errorf("SubmittedBy = %q, want Student Host", req.SubmittedBy)
	}
}

func TestCommunityService_PublishDirectSkipsQueue(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	event := svc.PublishDirect(ctx, domain.EventDetails{Title: "Wellness Fair"}, "")
	if event.CreatedBy != "Campus Admin" {
		t.Errorf("CreatedBy = %q, want Campus Admin", event.CreatedBy)
	}
	if len(svc.PendingRequests()) != 0 {
		t.Error("direct publish must not touch the pending queue")
	}
	if svc.Events()[0].ID != event.ID {
		t.Error("published event should be first")
	}
}

func TestCommunityService_AddMessage(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	before := len(svc.Discussions()["mentalWellness"].Messages)
	msg, ok := svc.AddMessage(ctx, "mentalWellness", "", "Anyone up for a walk after lectures?")
	if !ok {
		t.Fatal("posting to a seeded topic failed")
	}
	if msg.Author != "Anonymous" {
		t.Errorf("Author = %q, want Anonymous", msg.Author)
	}

	got := svc.Discussions()["mentalWellness"].Messages
	if len(got) != before+1 {
		t.Fatalf("expected %d messages, got %d", before+1, len(got))
	}
	if got[len(got)-1].ID != msg.ID {
		t.Error("new message should be appended at the end")
	}
}

func TestCommunityService_AddMessageUnknownTopic(t *testing.T) {
	ctx := context.Background()
	svc := app.NewCommunityService(ctx, memory.New())

	if _, ok := svc.AddMessage(ctx, "noSuchTopic", "Sam", "hello"); ok {
		t.Error("posting to an unknown topic should be a no-op")
	}
}

func TestCommunityService_StateSurvivesReload(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	first := app.NewCommunityService(ctx, store)
	req := first.Submit(ctx, domain.EventDetails{Title: "Bike Repair Workshop"}, "Lee")
	first.AddMessage(ctx, "nutritionNook", "Lee", "Meal prep Sunday?")

	second := app.NewCommunityService(ctx, store)
	if got := second.PendingRequests(); len(got) != 1 || got[0].ID != req.ID {
		t.Errorf("pending queue lost across reload: %+v", got)
	}
	msgs := second.Discussions()["nutritionNook"].Messages
	if len(msgs) == 0 || msgs[len(msgs)-1].Content != "Meal prep Sunday?" {
		t.Error("discussion message lost across reload")
	}
}
