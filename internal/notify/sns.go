package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

// Publisher is the part of the SNS client the sink uses.
type Publisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSSink publishes events as JSON to an SNS topic. The event type is also
// set as a message attribute so subscribers can filter on it.
type SNSSink struct {
	Client   Publisher
	TopicArn string
}

// NewSNSSink creates a sink for the given topic.
func NewSNSSink(client Publisher, topicArn string) *SNSSink {
	return &SNSSink{Client: client, TopicArn: topicArn}
}

// Send publishes e.
func (s *SNSSink) Send(ctx context.Context, e Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	_, err = s.Client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(s.TopicArn),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event": {
				DataType:    aws.String("String"),
				StringValue: aws.String(string(e.Type)),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish to sns: %w", err)
	}

	return nil
}
