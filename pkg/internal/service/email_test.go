package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/greengivers/nursery/pkg/internal/mailer"
	"github.com/greengivers/nursery/pkg/internal/service"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	"github.com/greengivers/nursery/pkg/internal/types"
)

// fakeMailer captures dispatched mail instead of talking to a relay.
type fakeMailer struct {
	sent    []sentMail
	failErr error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, htmlBody string) (*mailer.SendResult, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}

	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: htmlBody})

	return &mailer.SendResult{Success: true, MessageID: "<test@localhost>"}, nil
}

func (f *fakeMailer) Verify(ctx context.Context) error { return nil }

func (f *fakeMailer) From() string { return "nursery@example.com" }

func validVisit() *types.VisitRequest {
	return &types.VisitRequest{
		Name:  "Asha",
		Email: "asha@example.com",
		Date:  "2026-09-15",
		Time:  "10:00",
	}
}

func validPurchase(image string) *types.PurchaseInquiry {
	return &types.PurchaseInquiry{
		FormData: types.PurchaseForm{
			Name:     "Asha",
			Email:    "asha@example.com",
			Quantity: 2,
		},
		PlantDetails: types.PlantSnapshot{
			Name:     "Rose Plant",
			Category: "Flower Plants",
			Price:    150,
			Image:    image,
		},
	}
}

func TestSendVisitRequest(t *testing.T) {
	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "admin@example.com")

	req := validVisit()
	req.Location = "Hyderabad"

	res, err := svc.SendVisitRequest(context.Background(), req)
	if err != nil {
		t.Fatalf("SendVisitRequest failed: %v", err)
	}
	if !res.Success {
		t.Error("expected a success result")
	}

	if len(fm.sent) != 1 {
		t.Fatalf("expected 1 dispatched mail, got %d", len(fm.sent))
	}

	mail := fm.sent[0]
	if mail.to != "admin@example.com" {
		t.Errorf("expected admin recipient, got %q", mail.to)
	}
	for _, want := range []string{"Asha", "asha@example.com", "2026-09-15", "10:00", "Hyderabad"} {
		if !strings.Contains(mail.body, want) {
			t.Errorf("rendered body missing %q", want)
		}
	}
}

func TestVisitRequestEscapesUserFields(t *testing.T) {
	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "admin@example.com")

	req := validVisit()
	req.Name = `<script>alert("x")</script>`

	if _, err := svc.SendVisitRequest(context.Background(), req); err != nil {
		t.Fatalf("SendVisitRequest failed: %v", err)
	}

	body := fm.sent[0].body
	if strings.Contains(body, "<script>") {
		t.Error("caller-supplied markup reached the rendered body unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Error("expected the escaped form of the injected markup")
	}
}

func TestVisitRequestValidation(t *testing.T) {
	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "admin@example.com")

	req := validVisit()
	req.Email = "not-an-email"

	_, err := svc.SendVisitRequest(context.Background(), req)
	if err == nil {
		t.Fatal("expected a validation failure")
	}

	var verr *catalog.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}

	if len(fm.sent) != 0 {
		t.Error("invalid payload must not be dispatched")
	}
}

func TestPurchaseInquiryInlinesStoredImage(t *testing.T) {
	store := blob.NewMemory()
	bf, err := store.Put(context.Background(), bytes.NewReader([]byte("png bytes")), "rose.png", "image/png")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: store}, "admin@example.com")

	req := validPurchase(service.ImageURLPrefix + bf.Filename)

	if _, err := svc.SendPurchaseInquiry(context.Background(), req); err != nil {
		t.Fatalf("SendPurchaseInquiry failed: %v", err)
	}

	body := fm.sent[0].body
	if !strings.Contains(body, "data:image/png;base64,") {
		t.Error("stored image reference was not inlined as a data URI")
	}
	if !strings.Contains(body, "Rose Plant") {
		t.Error("product snapshot missing from the body")
	}
	// 2 * 150
	if !strings.Contains(body, "300.00") {
		t.Error("total amount missing from the body")
	}
}

func TestPurchaseInquiryAbsoluteURLPassesThrough(t *testing.T) {
	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "admin@example.com")

	req := validPurchase("https://cdn.example.com/rose.jpg")

	if _, err := svc.SendPurchaseInquiry(context.Background(), req); err != nil {
		t.Fatalf("SendPurchaseInquiry failed: %v", err)
	}

	if !strings.Contains(fm.sent[0].body, `src="https://cdn.example.com/rose.jpg"`) {
		t.Error("absolute image URL was not passed through unchanged")
	}
}

func TestPurchaseInquiryPlaceholderFallback(t *testing.T) {
	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "admin@example.com")

	req := validPurchase("does-not-exist.png")

	if _, err := svc.SendPurchaseInquiry(context.Background(), req); err != nil {
		t.Fatalf("unresolvable image must not fail the send: %v", err)
	}

	if len(fm.sent) != 1 {
		t.Fatal("dispatch must still happen when the image cannot be resolved")
	}
	if !strings.Contains(fm.sent[0].body, "placehold") {
		t.Error("expected the placeholder image in the rendered body")
	}
}

func TestRelayFailurePropagates(t *testing.T) {
	fm := &fakeMailer{failErr: errors.New("connection refused")}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "admin@example.com")

	if _, err := svc.SendVisitRequest(context.Background(), validVisit()); err == nil {
		t.Error("expected the relay failure to surface as an error")
	}
}

func TestMissingAdminAddress(t *testing.T) {
	fm := &fakeMailer{}
	svc := service.NewEmailService(fm, &blob.Client{Store: blob.NewMemory()}, "")

	_, err := svc.SendVisitRequest(context.Background(), validVisit())
	if !errors.Is(err, service.ErrNoAdminAddress) {
		t.Errorf("expected ErrNoAdminAddress, got %v", err)
	}
}
