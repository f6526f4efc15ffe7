package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/greengivers/nursery/pkg/internal/mailer"
	"github.com/greengivers/nursery/pkg/internal/storage/blob"
	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	"github.com/greengivers/nursery/pkg/internal/types"
	nlog "github.com/greengivers/nursery/pkg/log"
	"github.com/greengivers/nursery/pkg/rule"
)

const (
	visitSubject    = "🌱 New Visit Schedule Request - Green Givers Nursery"
	purchaseSubject = "🛒 New Purchase Inquiry - Green Givers Nursery"

	// placeholderImage replaces any product image that cannot be resolved.
	// Delivery takes priority over image fidelity.
	placeholderImage = "https://placehold.co/300x300?text=Plant+Image"
)

// ErrNoAdminAddress is returned when dispatch is attempted without a
// configured recipient.
var ErrNoAdminAddress = errors.New("no admin address configured")

var visitTemplate = template.Must(template.New("visit").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2E7D32;">New Visit Schedule Request</h2>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}Not provided{{end}}</p>
    <p><strong>Preferred Date:</strong> {{.Date}}</p>
    <p><strong>Preferred Time:</strong> {{.Time}}</p>
    <p><strong>Customer Location:</strong> {{if .Location}}{{.Location}}{{else}}Not specified{{end}}</p>
    <p><strong>Message:</strong> {{if .Message}}{{.Message}}{{else}}No additional message{{end}}</p>
  </div>
  <p style="color: #666; margin-top: 20px;">Please contact the customer to confirm the visit schedule.</p>
</div>`))

var purchaseTemplate = template.Must(template.New("purchase").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #2E7D32;">🛒 New Purchase Inquiry</h2>
  <div style="background: #fff; border: 2px solid #4CAF50; border-radius: 12px; padding: 20px; margin: 20px 0;">
    <h3 style="color: #2E7D32; margin-top: 0;">📦 Product Details</h3>
    <img src="{{.ImageSrc}}" alt="{{.Plant.Name}}" style="width: 150px; height: 150px; object-fit: cover; border-radius: 8px;" />
    <h4 style="color: #1B5E20;">{{.Plant.Name}}</h4>
    <p style="margin: 5px 0;"><strong>Category:</strong> {{.Plant.Category}}</p>
    <p style="margin: 5px 0;"><strong>Price:</strong> ₹{{printf "%.2f" .Plant.Price}}</p>
    <p style="margin: 5px 0;"><strong>Quantity Requested:</strong> {{.Form.Quantity}}</p>
    <p style="margin: 5px 0;"><strong>Total Amount:</strong> ₹{{printf "%.2f" .Total}}</p>
  </div>
  <div style="background: #f5f5f5; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #2E7D32; margin-top: 0;">👤 Customer Information</h3>
    <p><strong>Name:</strong> {{.Form.Name}}</p>
    <p><strong>Email:</strong> {{.Form.Email}}</p>
    <p><strong>Phone:</strong> {{if .Form.Phone}}{{.Form.Phone}}{{else}}Not provided{{end}}</p>
    {{if .Form.Message}}<p><strong>Message:</strong> {{.Form.Message}}</p>{{end}}
  </div>
  <div style="background: #2E7D32; color: white; padding: 20px; border-radius: 8px; text-align: center;">
    <p style="margin: 0; font-size: 16px;">💚 Please contact the customer to process their purchase inquiry</p>
  </div>
</div>`))

type purchaseData struct {
	Form  types.PurchaseForm
	Plant types.PlantSnapshot
	// ImageSrc is marked safe after resolution; the resolved value is either
	// a caller URL passed through, a data URI built from stored bytes, or
	// the fixed placeholder.
	ImageSrc template.URL
	Total    float64
}

// EmailService renders notification mail and hands it to the relay.
type EmailService struct {
	mail  mailer.Mailer
	store *blob.Client
	admin string
}

// NewEmailService builds the service. The blob client resolves product image
// references for inline embedding.
func NewEmailService(m mailer.Mailer, store *blob.Client, adminAddress string) *EmailService {
	return &EmailService{mail: m, store: store, admin: adminAddress}
}

// SendVisitRequest renders and dispatches a visit scheduling request to the
// admin address.
func (s *EmailService) SendVisitRequest(ctx context.Context, req *types.VisitRequest) (*mailer.SendResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	body, err := renderTemplate(visitTemplate, req)
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, visitSubject, body)
}

// SendPurchaseInquiry renders and dispatches a purchase inquiry to the admin
// address. The product image is inlined when it resolves; a resolution
// failure substitutes the placeholder and the mail is sent regardless.
func (s *EmailService) SendPurchaseInquiry(ctx context.Context, req *types.PurchaseInquiry) (*mailer.SendResult, error) {
	if err := validatePayload(req); err != nil {
		return nil, err
	}

	data := purchaseData{
		Form:     req.FormData,
		Plant:    req.PlantDetails,
		ImageSrc: s.resolveImage(ctx, req.PlantDetails.Image),
		Total:    req.PlantDetails.Price * float64(req.FormData.Quantity),
	}

	body, err := renderTemplate(purchaseTemplate, data)
	if err != nil {
		return nil, err
	}

	return s.dispatch(ctx, purchaseSubject, body)
}

func (s *EmailService) dispatch(ctx context.Context, subject, body string) (*mailer.SendResult, error) {
	if s.admin == "" {
		return nil, ErrNoAdminAddress
	}

	return s.mail.Send(ctx, s.admin, subject, body)
}

// resolveImage turns a product image reference into a source usable inside
// mail markup. Absolute URLs pass through, stored filenames are inlined as
// data URIs, anything unresolvable becomes the placeholder.
func (s *EmailService) resolveImage(ctx context.Context, ref string) template.URL {
	if ref == "" {
		return placeholderImage
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || strings.HasPrefix(ref, "data:") {
		return template.URL(ref)
	}

	filename := strings.TrimPrefix(ref, ImageURLPrefix)
	filename = strings.TrimPrefix(filename, "/")

	rc, bf, err := s.store.OpenReadStream(ctx, filename)
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("reference", ref).Msg("image not resolvable, using placeholder")

		return placeholderImage
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		nlog.Logger().Warn().Err(err).Str("reference", ref).Msg("image read failed, using placeholder")

		return placeholderImage
	}

	uri := fmt.Sprintf("data:%s;base64,%s", bf.ContentType, base64.StdEncoding.EncodeToString(data))

	return template.URL(uri)
}

func renderTemplate(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render email: %w", err)
	}

	return buf.String(), nil
}

// validatePayload converts validator failures into per-field messages.
func validatePayload(payload any) error {
	err := rule.ValidateStruct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed validation on rule %q", fe.Field(), fe.Tag()))
	}

	return &catalog.ValidationError{Errors: msgs}
}
