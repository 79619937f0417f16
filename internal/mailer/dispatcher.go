package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/autonovo/autonovo-backend/pkg/config"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/metrics"
	"github.com/autonovo/autonovo-backend/pkg/sendgrid"
)

// DefaultRecipientName replaces a blank name in template variables so the
// greeting never renders empty.
const DefaultRecipientName = "Usuário"

// DispatcherParams groups dependencies for the dispatcher.
type DispatcherParams struct {
	Sender  sendgrid.Sender
	Config  config.SendgridConfig
	Logger  *logger.Logger
	Metrics *metrics.DispatchMetrics
}

// Dispatcher sends the four approval-workflow emails. Every kind shares the
// same pipeline: validate the payload, bind template variables and submit one
// message. There is no dedup or retry; a lost send is the caller's problem.
type Dispatcher struct {
	sender  sendgrid.Sender
	catalog Catalog
	cfg     config.SendgridConfig
	logg    *logger.Logger
	metrics *metrics.DispatchMetrics
}

// NewDispatcher builds the email dispatcher.
func NewDispatcher(params DispatcherParams) (*Dispatcher, error) {
	if params.Sender == nil {
		return nil, fmt.Errorf("sender is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Dispatcher{
		sender:  params.Sender,
		catalog: NewCatalog(params.Config),
		cfg:     params.Config,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Dispatch validates the payload for the kind and sends the templated email,
// returning the provider acknowledgment.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, payload map[string]any) (*sendgrid.Ack, error) {
	tpl, ok := d.catalog[kind]
	if !ok {
		return nil, fmt.Errorf("unknown email kind %q", kind)
	}
	for _, field := range tpl.Required {
		if stringField(payload, field) == "" {
			d.record(kind, false)
			return nil, fmt.Errorf("missing required field %q", field)
		}
	}

	msg := d.buildMessage(kind, tpl, payload)
	ack, err := d.sender.Send(ctx, msg)
	if err != nil {
		d.record(kind, false)
		logCtx := d.logg.WithField(ctx, "email_kind", string(kind))
		d.logg.Error(logCtx, "email dispatch failed", err)
		return ack, err
	}
	d.record(kind, true)
	return ack, nil
}

func (d *Dispatcher) buildMessage(kind Kind, tpl TemplateConfig, payload map[string]any) sendgrid.Message {
	vars := make(map[string]any, len(payload))
	for key, value := range payload {
		vars[key] = value
	}

	msg := sendgrid.Message{
		TemplateID: tpl.TemplateID,
		Subject:    tpl.Subject,
		Variables:  vars,
	}

	if tpl.ToAdmin {
		msg.ToEmail = d.cfg.AdminEmail
		msg.ToName = "Moderação AutoNovo"
		return msg
	}

	msg.ToEmail = stringField(payload, "email")
	name := stringField(payload, "name")
	if name == "" {
		name = DefaultRecipientName
	}
	msg.ToName = name
	vars["name"] = name
	return msg
}

func (d *Dispatcher) record(kind Kind, sent bool) {
	if d.metrics == nil {
		return
	}
	if sent {
		d.metrics.IncSent(string(kind))
		return
	}
	d.metrics.IncFailed(string(kind))
}

func stringField(payload map[string]any, field string) string {
	value, ok := payload[field]
	if !ok {
		return ""
	}
	text, ok := value.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}
