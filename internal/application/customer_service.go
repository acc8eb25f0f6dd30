package application

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/invoice-dashboard/internal/domain/repository"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

const (
	msgFetchCustomers     = "Failed to fetch all customers."
	msgFetchCustomerTable = "Failed to fetch customer table."
	msgUploadAvatar       = "Failed to upload customer image."
)

// ObjectUploader stores an object and returns its public URL.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

type CustomerService struct {
	Repo    repo.CustomerRepository
	Storage ObjectUploader
	Logger  logrus.FieldLogger
}

func NewCustomerService(r repo.CustomerRepository, storage ObjectUploader, logger logrus.FieldLogger) *CustomerService {
	return &CustomerService{Repo: r, Storage: storage, Logger: logger}
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgFetchCustomers, err, logrus.Fields{"op": "ListCustomers"})
	}
	return out, nil
}

// SearchCustomers matches query as a literal substring of name or email.
func (s *CustomerService) SearchCustomers(ctx context.Context, query string) ([]entity.CustomerSummary, error) {
	out, err := s.Repo.Search(ctx, query)
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgFetchCustomerTable, err, logrus.Fields{"op": "SearchCustomers", "query": query})
	}
	return out, nil
}

// UploadAvatar stores the image and points the customer's image_url at it.
func (s *CustomerService) UploadAvatar(ctx context.Context, customerID string, r io.Reader, filename, contentType string) (string, error) {
	if s.Storage == nil {
		return "", ErrStorageNotConfigured
	}
	if _, err := uuid.Parse(customerID); err != nil {
		return "", ErrCustomerNotFound
	}
	if _, err := s.Repo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrCustomerNotFound
		}
		return "", dataAccess(s.Logger, ErrDataAccess, msgUploadAvatar, err, logrus.Fields{"op": "UploadAvatar", "customer_id": customerID})
	}

	url, err := s.Storage.Upload(ctx, helpers.AvatarObjectPath(customerID, filename), contentType, r)
	if err != nil {
		return "", dataAccess(s.Logger, ErrBackendUnavailable, msgUploadAvatar, err, logrus.Fields{"op": "UploadAvatar", "customer_id": customerID})
	}
	if err := s.Repo.UpdateImageURL(ctx, customerID, url); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrCustomerNotFound
		}
		return "", dataAccess(s.Logger, ErrDataAccess, msgUploadAvatar, err, logrus.Fields{"op": "UploadAvatar", "customer_id": customerID})
	}
	return url, nil
}
