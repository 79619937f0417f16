package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/autonovo/autonovo-backend/pkg/config"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/sendgrid"
)

type stubSender struct {
	sent []sendgrid.Message
	ack  *sendgrid.Ack
	err  error
}

func (s *stubSender) Send(_ context.Context, msg sendgrid.Message) (*sendgrid.Ack, error) {
	s.sent = append(s.sent, msg)
	return s.ack, s.err
}

func testSendgridConfig() config.SendgridConfig {
	return config.SendgridConfig{
		APIKey:                  "SG.test",
		FromEmail:               "no-reply@autonovo.com.br",
		FromName:                "AutoNovo",
		AdminEmail:              "moderacao@autonovo.com.br",
		AccountApprovedTemplate: "d-conta-aprovada",
		AdApprovedTemplate:      "d-anuncio-aprovado",
		AdminAlertTemplate:      "d-alerta-admin",
		DocumentStatusTemplate:  "d-status-documentos",
	}
}

func newTestDispatcher(t *testing.T, sender *stubSender) *Dispatcher {
	t.Helper()
	d, err := NewDispatcher(DispatcherParams{
		Sender: sender,
		Config: testSendgridConfig(),
		Logger: logger.New(logger.Options{ServiceName: "mailer-test"}),
	})
	if err != nil {
		t.Fatalf("construct dispatcher: %v", err)
	}
	return d
}

func TestDispatch_AccountApproved(t *testing.T) {
	sender := &stubSender{ack: &sendgrid.Ack{StatusCode: 202, MessageID: "msg-1"}}
	d := newTestDispatcher(t, sender)

	ack, err := d.Dispatch(context.Background(), KindAccountApproved, map[string]any{
		"email": "maria@example.com",
		"name":  "Maria",
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if ack.MessageID != "msg-1" {
		t.Fatalf("expected provider ack, got %+v", ack)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected one send, got %d", len(sender.sent))
	}
	msg := sender.sent[0]
	if msg.TemplateID != "d-conta-aprovada" {
		t.Fatalf("wrong template %q", msg.TemplateID)
	}
	if msg.ToEmail != "maria@example.com" || msg.ToName != "Maria" {
		t.Fatalf("wrong recipient %q <%s>", msg.ToName, msg.ToEmail)
	}
	if msg.Variables["name"] != "Maria" {
		t.Fatalf("name variable not bound: %v", msg.Variables)
	}
}

func TestDispatch_BlankNameGetsDefault(t *testing.T) {
	sender := &stubSender{ack: &sendgrid.Ack{StatusCode: 202}}
	d := newTestDispatcher(t, sender)

	if _, err := d.Dispatch(context.Background(), KindDocumentStatus, map[string]any{
		"email": "joao@example.com",
		"name":  "   ",
	}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	msg := sender.sent[0]
	if msg.ToName != DefaultRecipientName {
		t.Fatalf("expected default name, got %q", msg.ToName)
	}
	if msg.Variables["name"] != DefaultRecipientName {
		t.Fatalf("expected default name variable, got %v", msg.Variables["name"])
	}
}

func TestDispatch_MissingRequiredField(t *testing.T) {
	sender := &stubSender{ack: &sendgrid.Ack{StatusCode: 202}}
	d := newTestDispatcher(t, sender)

	cases := []struct {
		kind    Kind
		payload map[string]any
		field   string
	}{
		{KindAccountApproved, map[string]any{"name": "Maria"}, "email"},
		{KindAdApproved, map[string]any{"email": "x@example.com"}, "vehicle_title"},
		{KindAdminAlert, map[string]any{"alert_type": "kyc", "user_name": "Maria"}, "user_email"},
		{KindDocumentStatus, map[string]any{}, "email"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), tc.kind, tc.payload)
			if err == nil {
				t.Fatalf("expected error for missing %s", tc.field)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Fatalf("error should name the field, got %v", err)
			}
		})
	}
	if len(sender.sent) != 0 {
		t.Fatalf("no email may be sent on validation failure, got %d", len(sender.sent))
	}
}

func TestDispatch_AdminAlertRoutesToModerationInbox(t *testing.T) {
	sender := &stubSender{ack: &sendgrid.Ack{StatusCode: 202}}
	d := newTestDispatcher(t, sender)

	if _, err := d.Dispatch(context.Background(), KindAdminAlert, map[string]any{
		"alert_type":    "kyc_submitted",
		"user_name":     "Carlos",
		"user_email":    "carlos@example.com",
		"vehicle_title": "Volvo FH 2020",
	}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	msg := sender.sent[0]
	if msg.ToEmail != "moderacao@autonovo.com.br" {
		t.Fatalf("admin alert must go to the moderation inbox, got %q", msg.ToEmail)
	}
	if msg.TemplateID != "d-alerta-admin" {
		t.Fatalf("wrong template %q", msg.TemplateID)
	}
	if msg.Variables["alert_type"] != "kyc_submitted" || msg.Variables["vehicle_title"] != "Volvo FH 2020" {
		t.Fatalf("alert variables not bound: %v", msg.Variables)
	}
}

func TestDispatch_ProviderErrorPropagates(t *testing.T) {
	sender := &stubSender{err: errors.New("sendgrid rejected message: status 401")}
	d := newTestDispatcher(t, sender)

	_, err := d.Dispatch(context.Background(), KindAccountApproved, map[string]any{"email": "maria@example.com"})
	if err == nil {
		t.Fatalf("expected provider error to propagate")
	}
}

func TestDispatch_UnknownKind(t *testing.T) {
	sender := &stubSender{}
	d := newTestDispatcher(t, sender)

	if _, err := d.Dispatch(context.Background(), Kind("marketing_blast"), map[string]any{}); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
}
