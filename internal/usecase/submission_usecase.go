package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nhero-website/internal/domain"
	"github.com/nhero-website/internal/domain/repository"
	"github.com/nhero-website/internal/pkg/i18n"
	pkgvalidator "github.com/nhero-website/internal/pkg/validator"
	"github.com/nhero-website/internal/usecase/dto"
)

// FieldErrors carries per-field validation messages, already localized.
type FieldErrors struct {
	Fields map[string]string
}

func (e *FieldErrors) Error() string {
	return "validation failed"
}

// SubmissionUsecase is the authoritative side of the form pipeline:
// every rule the browser checks is re-checked here before a lead is
// written into the CMS.
type SubmissionUsecase struct {
	submissionRepo repository.SubmissionRepository
	captchaUC      *CaptchaUsecase
	logger         *zap.Logger
}

func NewSubmissionUsecase(
	submissionRepo repository.SubmissionRepository,
	captchaUC *CaptchaUsecase,
	logger *zap.Logger,
) *SubmissionUsecase {
	return &SubmissionUsecase{
		submissionRepo: submissionRepo,
		captchaUC:      captchaUC,
		logger:         logger,
	}
}

// SubmitContact validates and persists a contact lead. Returns
// *FieldErrors for recoverable input problems; any other error means the
// CMS write failed.
func (uc *SubmissionUsecase) SubmitContact(ctx context.Context, locale string, req dto.ContactRequest) error {
	fields := uc.collectFieldErrors(locale, pkgvalidator.Validate(&req))

	// The captcha only counts as passed when the answer field survived
	// struct validation in the first place.
	if _, bad := fields["captcha_answer"]; !bad && req.CaptchaAnswer != nil {
		if !uc.captchaUC.Verify(ctx, req.CaptchaID, *req.CaptchaAnswer) {
			fields["captcha_answer"] = i18n.T(locale, "errors.captchaWrong")
		}
	}

	if len(fields) > 0 {
		return &FieldErrors{Fields: fields}
	}

	sub := &domain.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}
	if err := uc.submissionRepo.CreateContactSubmission(ctx, sub); err != nil {
		uc.logger.Error("Failed to create contact submission", zap.Error(err))
		return err
	}

	uc.logger.Info("Contact submission created", zap.String("email", req.Email))
	return nil
}

// SubmitBusinessQuote validates and persists a quote request. This form
// carries no captcha.
func (uc *SubmissionUsecase) SubmitBusinessQuote(ctx context.Context, locale string, req dto.BusinessQuoteRequest) error {
	fields := uc.collectFieldErrors(locale, pkgvalidator.Validate(&req))
	if len(fields) > 0 {
		return &FieldErrors{Fields: fields}
	}

	sub := &domain.BusinessQuoteSubmission{
		Name:         req.Name,
		Company:      req.Company,
		Email:        req.Email,
		Phone:        req.Phone,
		EventType:    req.EventType,
		EventDate:    req.EventDate,
		GuestsNumber: req.GuestsNumber,
		Notes:        req.Notes,
	}
	if err := uc.submissionRepo.CreateBusinessQuoteSubmission(ctx, sub); err != nil {
		uc.logger.Error("Failed to create business quote submission", zap.Error(err))
		return err
	}

	uc.logger.Info("Business quote submission created",
		zap.String("email", req.Email),
		zap.String("event_type", req.EventType),
	)
	return nil
}

// collectFieldErrors converts validator output into a localized field ->
// message map keyed by the JSON field name.
func (uc *SubmissionUsecase) collectFieldErrors(locale string, err error) map[string]string {
	fields := make(map[string]string)
	if err == nil {
		return fields
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		uc.logger.Warn("Unexpected validation error", zap.Error(err))
		fields["_"] = i18n.T(locale, "errors.invalidEmail")
		return fields
	}

	for _, fe := range verrs {
		switch fe.Field() {
		case "Name":
			fields["name"] = i18n.T(locale, "errors.nameTooShort")
		case "Email":
			fields["email"] = i18n.T(locale, "errors.invalidEmail")
		case "Message":
			fields["message"] = i18n.T(locale, "errors.messageTooShort")
		case "PrivacyAccepted":
			fields["privacy_accepted"] = i18n.T(locale, "errors.privacyRequired")
		case "CaptchaID", "CaptchaAnswer":
			fields["captcha_answer"] = i18n.T(locale, "errors.captchaWrong")
		case "Company":
			fields["company"] = i18n.T(locale, "errors.companyRequired")
		case "EventType":
			fields["event_type"] = i18n.T(locale, "errors.eventTypeRequired")
		case "GuestsNumber":
			fields["guests_number"] = i18n.T(locale, "errors.guestsInvalid")
		}
	}
	return fields
}
