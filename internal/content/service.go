package content

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stitchline/stitchline-backend/pkg/db/models"
	pkgerrors "github.com/stitchline/stitchline-backend/pkg/errors"
	"github.com/stitchline/stitchline-backend/pkg/pagination"
)

// Service exposes site content management and the public content reads.
type Service interface {
	ListSliders(ctx context.Context, includeInactive bool) ([]SliderDTO, error)
	CreateSlider(ctx context.Context, req SliderRequest) (*SliderDTO, error)
	UpdateSlider(ctx context.Context, id uuid.UUID, req SliderRequest) (*SliderDTO, error)
	DeleteSlider(ctx context.Context, id uuid.UUID) error

	ListSocialNetworks(ctx context.Context, includeInactive bool) ([]SocialNetworkDTO, error)
	CreateSocialNetwork(ctx context.Context, req SocialNetworkRequest) (*SocialNetworkDTO, error)
	UpdateSocialNetwork(ctx context.Context, id uuid.UUID, req SocialNetworkRequest) (*SocialNetworkDTO, error)
	DeleteSocialNetwork(ctx context.Context, id uuid.UUID) error

	SubmitFeedback(ctx context.Context, req FeedbackRequest) (*FeedbackDTO, error)
	ListFeedback(ctx context.Context, params pagination.Params) (*FeedbackList, error)

	ListDeliveryOptions(ctx context.Context, includeInactive bool) ([]DeliveryOptionDTO, error)
	CreateDeliveryOption(ctx context.Context, req DeliveryOptionRequest) (*DeliveryOptionDTO, error)
	UpdateDeliveryOption(ctx context.Context, id uuid.UUID, req DeliveryOptionRequest) (*DeliveryOptionDTO, error)
	DeleteDeliveryOption(ctx context.Context, id uuid.UUID) error

	ListStoreLocations(ctx context.Context) ([]StoreLocationDTO, error)
	CreateStoreLocation(ctx context.Context, req StoreLocationRequest) (*StoreLocationDTO, error)
	UpdateStoreLocation(ctx context.Context, id uuid.UUID, req StoreLocationRequest) (*StoreLocationDTO, error)
	DeleteStoreLocation(ctx context.Context, id uuid.UUID) error

	GetCompanyDetails(ctx context.Context) (*CompanyDetailsDTO, error)
	UpdateCompanyDetails(ctx context.Context, req CompanyDetailsRequest) (*CompanyDetailsDTO, error)
	GetSiteLogo(ctx context.Context) (*SiteLogoDTO, error)
	UpdateSiteLogo(ctx context.Context, req SiteLogoRequest) (*SiteLogoDTO, error)
	GetDeliveryPaymentInfo(ctx context.Context) (*DeliveryPaymentInfoDTO, error)
	UpdateDeliveryPaymentInfo(ctx context.Context, req DeliveryPaymentInfoRequest) (*DeliveryPaymentInfoDTO, error)
	GetAboutUs(ctx context.Context) (*AboutUsDTO, error)
	UpdateAboutUs(ctx context.Context, req AboutUsRequest) (*AboutUsDTO, error)
}

type service struct {
	repo *Repository
}

// ServiceParams bundles the content service dependencies.
type ServiceParams struct {
	Repo *Repository
}

// NewService constructs the content service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("content repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListSliders(ctx context.Context, includeInactive bool) ([]SliderDTO, error) {
	rows, err := s.repo.ListSliders(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list sliders")
	}
	out := make([]SliderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, sliderFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateSlider(ctx context.Context, req SliderRequest) (*SliderDTO, error) {
	row := &models.Slider{
		ImageURL: req.ImageURL,
		AltText:  req.AltText,
		Position: req.Position,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := s.repo.CreateSlider(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create slider")
	}
	dto := sliderFromModel(row)
	return &dto, nil
}

func (s *service) UpdateSlider(ctx context.Context, id uuid.UUID, req SliderRequest) (*SliderDTO, error) {
	if _, err := s.repo.FindSlider(ctx, id); err != nil {
		return nil, contentNotFound(err, "slider")
	}
	fields := map[string]any{
		"image_url": req.ImageURL,
		"alt_text":  req.AltText,
		"position":  req.Position,
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.repo.UpdateSlider(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update slider")
	}
	row, err := s.repo.FindSlider(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload slider")
	}
	dto := sliderFromModel(row)
	return &dto, nil
}

func (s *service) DeleteSlider(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindSlider(ctx, id); err != nil {
		return contentNotFound(err, "slider")
	}
	if err := s.repo.DeleteSlider(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete slider")
	}
	return nil
}

func (s *service) ListSocialNetworks(ctx context.Context, includeInactive bool) ([]SocialNetworkDTO, error) {
	rows, err := s.repo.ListSocialNetworks(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list social networks")
	}
	out := make([]SocialNetworkDTO, 0, len(rows))
	for i := range rows {
		out = append(out, socialNetworkFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateSocialNetwork(ctx context.Context, req SocialNetworkRequest) (*SocialNetworkDTO, error) {
	row := &models.SocialNetwork{
		Name:     strings.TrimSpace(req.Name),
		IconURL:  req.IconURL,
		Link:     req.Link,
		IsActive: boolOrDefault(req.IsActive, true),
	}
	if err := s.repo.CreateSocialNetwork(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create social network")
	}
	dto := socialNetworkFromModel(row)
	return &dto, nil
}

func (s *service) UpdateSocialNetwork(ctx context.Context, id uuid.UUID, req SocialNetworkRequest) (*SocialNetworkDTO, error) {
	if _, err := s.repo.FindSocialNetwork(ctx, id); err != nil {
		return nil, contentNotFound(err, "social network")
	}
	fields := map[string]any{
		"name":     strings.TrimSpace(req.Name),
		"icon_url": req.IconURL,
		"link":     req.Link,
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.repo.UpdateSocialNetwork(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update social network")
	}
	row, err := s.repo.FindSocialNetwork(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload social network")
	}
	dto := socialNetworkFromModel(row)
	return &dto, nil
}

func (s *service) DeleteSocialNetwork(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindSocialNetwork(ctx, id); err != nil {
		return contentNotFound(err, "social network")
	}
	if err := s.repo.DeleteSocialNetwork(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete social network")
	}
	return nil
}

func (s *service) SubmitFeedback(ctx context.Context, req FeedbackRequest) (*FeedbackDTO, error) {
	row := &models.Feedback{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.repo.CreateFeedback(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store feedback")
	}
	dto := feedbackFromModel(row)
	return &dto, nil
}

func (s *service) ListFeedback(ctx context.Context, params pagination.Params) (*FeedbackList, error) {
	params = params.Normalize()
	rows, total, err := s.repo.ListFeedback(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list feedback")
	}
	out := &FeedbackList{
		Feedback: make([]FeedbackDTO, 0, len(rows)),
		Page:     pagination.NewPage(params, total),
	}
	for i := range rows {
		out.Feedback = append(out.Feedback, feedbackFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) ListDeliveryOptions(ctx context.Context, includeInactive bool) ([]DeliveryOptionDTO, error) {
	rows, err := s.repo.ListDeliveryOptions(ctx, includeInactive)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list delivery options")
	}
	out := make([]DeliveryOptionDTO, 0, len(rows))
	for i := range rows {
		out = append(out, deliveryOptionFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateDeliveryOption(ctx context.Context, req DeliveryOptionRequest) (*DeliveryOptionDTO, error) {
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	row := &models.DeliveryOption{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		IsActive:    boolOrDefault(req.IsActive, true),
	}
	if err := s.repo.CreateDeliveryOption(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create delivery option")
	}
	dto := deliveryOptionFromModel(row)
	return &dto, nil
}

func (s *service) UpdateDeliveryOption(ctx context.Context, id uuid.UUID, req DeliveryOptionRequest) (*DeliveryOptionDTO, error) {
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price cannot be negative")
	}
	if _, err := s.repo.FindDeliveryOption(ctx, id); err != nil {
		return nil, contentNotFound(err, "delivery option")
	}
	fields := map[string]any{
		"name":        strings.TrimSpace(req.Name),
		"description": req.Description,
		"price":       req.Price,
	}
	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}
	if err := s.repo.UpdateDeliveryOption(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update delivery option")
	}
	row, err := s.repo.FindDeliveryOption(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload delivery option")
	}
	dto := deliveryOptionFromModel(row)
	return &dto, nil
}

func (s *service) DeleteDeliveryOption(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindDeliveryOption(ctx, id); err != nil {
		return contentNotFound(err, "delivery option")
	}
	if err := s.repo.DeleteDeliveryOption(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete delivery option")
	}
	return nil
}

func (s *service) ListStoreLocations(ctx context.Context) ([]StoreLocationDTO, error) {
	rows, err := s.repo.ListStoreLocations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list store locations")
	}
	out := make([]StoreLocationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, storeLocationFromModel(&rows[i]))
	}
	return out, nil
}

func (s *service) CreateStoreLocation(ctx context.Context, req StoreLocationRequest) (*StoreLocationDTO, error) {
	row := &models.StoreLocation{
		City:         strings.TrimSpace(req.City),
		Address:      strings.TrimSpace(req.Address),
		WorkSchedule: strings.TrimSpace(req.WorkSchedule),
	}
	if err := s.repo.CreateStoreLocation(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create store location")
	}
	dto := storeLocationFromModel(row)
	return &dto, nil
}

func (s *service) UpdateStoreLocation(ctx context.Context, id uuid.UUID, req StoreLocationRequest) (*StoreLocationDTO, error) {
	if _, err := s.repo.FindStoreLocation(ctx, id); err != nil {
		return nil, contentNotFound(err, "store location")
	}
	fields := map[string]any{
		"city":          strings.TrimSpace(req.City),
		"address":       strings.TrimSpace(req.Address),
		"work_schedule": strings.TrimSpace(req.WorkSchedule),
	}
	if err := s.repo.UpdateStoreLocation(ctx, id, fields); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update store location")
	}
	row, err := s.repo.FindStoreLocation(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reload store location")
	}
	dto := storeLocationFromModel(row)
	return &dto, nil
}

func (s *service) DeleteStoreLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindStoreLocation(ctx, id); err != nil {
		return contentNotFound(err, "store location")
	}
	if err := s.repo.DeleteStoreLocation(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete store location")
	}
	return nil
}

func (s *service) GetCompanyDetails(ctx context.Context) (*CompanyDetailsDTO, error) {
	row, err := s.repo.LoadCompanyDetails(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load company details")
	}
	return &CompanyDetailsDTO{Name: row.Name, Description: row.Description, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) UpdateCompanyDetails(ctx context.Context, req CompanyDetailsRequest) (*CompanyDetailsDTO, error) {
	row, err := s.repo.LoadCompanyDetails(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load company details")
	}
	row.Name = strings.TrimSpace(req.Name)
	row.Description = req.Description
	if err := s.repo.SaveCompanyDetails(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save company details")
	}
	return &CompanyDetailsDTO{Name: row.Name, Description: row.Description, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) GetSiteLogo(ctx context.Context) (*SiteLogoDTO, error) {
	row, err := s.repo.LoadSiteLogo(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load site logo")
	}
	return &SiteLogoDTO{LogoURL: row.LogoURL, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) UpdateSiteLogo(ctx context.Context, req SiteLogoRequest) (*SiteLogoDTO, error) {
	row, err := s.repo.LoadSiteLogo(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load site logo")
	}
	row.LogoURL = req.LogoURL
	if err := s.repo.SaveSiteLogo(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save site logo")
	}
	return &SiteLogoDTO{LogoURL: row.LogoURL, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) GetDeliveryPaymentInfo(ctx context.Context) (*DeliveryPaymentInfoDTO, error) {
	row, err := s.repo.LoadDeliveryPaymentInfo(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load delivery payment info")
	}
	return &DeliveryPaymentInfoDTO{DeliveryInfo: row.DeliveryInfo, PaymentInfo: row.PaymentInfo, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) UpdateDeliveryPaymentInfo(ctx context.Context, req DeliveryPaymentInfoRequest) (*DeliveryPaymentInfoDTO, error) {
	row, err := s.repo.LoadDeliveryPaymentInfo(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load delivery payment info")
	}
	row.DeliveryInfo = req.DeliveryInfo
	row.PaymentInfo = req.PaymentInfo
	if err := s.repo.SaveDeliveryPaymentInfo(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save delivery payment info")
	}
	return &DeliveryPaymentInfoDTO{DeliveryInfo: row.DeliveryInfo, PaymentInfo: row.PaymentInfo, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) GetAboutUs(ctx context.Context) (*AboutUsDTO, error) {
	row, err := s.repo.LoadAboutUs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load about page")
	}
	return &AboutUsDTO{Title: row.Title, Content: row.Content, UpdatedAt: row.UpdatedAt}, nil
}

func (s *service) UpdateAboutUs(ctx context.Context, req AboutUsRequest) (*AboutUsDTO, error) {
	row, err := s.repo.LoadAboutUs(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load about page")
	}
	row.Title = strings.TrimSpace(req.Title)
	row.Content = req.Content
	if err := s.repo.SaveAboutUs(ctx, row); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save about page")
	}
	return &AboutUsDTO{Title: row.Title, Content: row.Content, UpdatedAt: row.UpdatedAt}, nil
}

func contentNotFound(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, entity+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load "+entity)
}

func boolOrDefault(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
