package utils

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

func InitSES() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("AWS config load failed: %v", err)
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		return fmt.Errorf("SES not initialized")
	}
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		log.Printf("SES send error: %v", err)
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendDonationReceipt thanks the donor and summarizes the batch.
func SendDonationReceipt(to, foodName string, itemCount int, amount float64, ngoName string) error {
	subject := "Thank you for your donation"
	recipient := ngoName
	if recipient == "" {
		recipient = "a local NGO"
	}
	body := fmt.Sprintf(
		"Your donation of %s (%d item(s), valued at %.2f) to %s has been recorded.\n\nEvery rescued meal counts.",
		foodName, itemCount, amount, recipient,
	)
	return sendEmail(to, subject, body)
}

// SendWelcomeEmail greets a newly registered user.
func SendWelcomeEmail(to, name string) error {
	subject := "Welcome to SaveBite"
	body := fmt.Sprintf("Hi %s,\n\nYour account is ready. Add your first food items to start saving meals.", name)
	return sendEmail(to, subject, body)
}
