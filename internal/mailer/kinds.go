package mailer

import (
	"github.com/autonovo/autonovo-backend/pkg/config"
)

// Kind identifies one transactional email template.
type Kind string

const (
	KindAccountApproved Kind = "account_approved"
	KindAdApproved      Kind = "ad_approved"
	KindAdminAlert      Kind = "admin_alert"
	KindDocumentStatus  Kind = "document_status"
)

// TemplateConfig describes how one kind maps onto the provider: which dynamic
// template, which subject line and which payload fields must be present.
type TemplateConfig struct {
	TemplateID string
	Subject    string
	Required   []string

	// ToAdmin routes the message to the configured moderation inbox
	// instead of an address taken from the payload.
	ToAdmin bool
}

// Catalog holds the per-kind template configurations.
type Catalog map[Kind]TemplateConfig

// NewCatalog binds the configured template identifiers to the known kinds.
func NewCatalog(cfg config.SendgridConfig) Catalog {
	return Catalog{
		KindAccountApproved: {
			TemplateID: cfg.AccountApprovedTemplate,
			Subject:    "Sua conta foi aprovada - AutoNovo",
			Required:   []string{"email"},
		},
		KindAdApproved: {
			TemplateID: cfg.AdApprovedTemplate,
			Subject:    "Seu anúncio foi aprovado - AutoNovo",
			Required:   []string{"email", "vehicle_title"},
		},
		KindAdminAlert: {
			TemplateID: cfg.AdminAlertTemplate,
			Subject:    "Alerta administrativo - AutoNovo",
			Required:   []string{"alert_type", "user_name", "user_email"},
			ToAdmin:    true,
		},
		KindDocumentStatus: {
			TemplateID: cfg.DocumentStatusTemplate,
			Subject:    "Atualização dos seus documentos - AutoNovo",
			Required:   []string{"email"},
		},
	}
}
