package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/solocoffee/pos-api/models"
)

// PaymentResult carries the collaborator's answer for one charge attempt
type PaymentResult struct {
	TransactionID string
	Success       bool
	Message       string
}

// PaymentService is the external payment collaborator. The core only cares
// about success or failure; protocol details live behind this interface.
type PaymentService interface {
	// Charge attempts to collect the order's actual amount
	Charge(order *models.Order, method string) (*PaymentResult, error)
}

// SimulatedPaymentService approves every charge and issues a transaction id
type SimulatedPaymentService struct{}

var paymentServiceInstance PaymentService

// InitPaymentService initializes the payment service with the simulated backend
func InitPaymentService() PaymentService {
	paymentServiceInstance = &SimulatedPaymentService{}
	return paymentServiceInstance
}

// GetPaymentService returns the initialized payment service instance
func GetPaymentService() PaymentService {
	if paymentServiceInstance == nil {
		return InitPaymentService()
	}
	return paymentServiceInstance
}

// SetPaymentService sets the payment service instance (primarily for testing)
func SetPaymentService(service PaymentService) {
	paymentServiceInstance = service
}

// Charge simulates a successful payment
func (s *SimulatedPaymentService) Charge(order *models.Order, method string) (*PaymentResult, error) {
	return &PaymentResult{
		TransactionID: fmt.Sprintf("TXN-%s", uuid.NewString()[:8]),
		Success:       true,
	}, nil
}
