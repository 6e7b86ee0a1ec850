package services

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
)

// ModerationService screens profile photos before upload. The gate fails
// open: if the moderation call itself errors, the photo is allowed.
type ModerationService struct {
	client *rekognition.Client
}

func NewModerationService() (*ModerationService, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &ModerationService{client: rekognition.NewFromConfig(cfg)}, nil
}

func decodeDataURI(dataURI string) ([]byte, error) {
	if !strings.HasPrefix(dataURI, "data:image") {
		return nil, errors.New("invalid data URI")
	}
	idx := strings.Index(dataURI, ",")
	if idx == -1 {
		return nil, errors.New("invalid data URI")
	}
	return base64.StdEncoding.DecodeString(dataURI[idx+1:])
}

// CheckImage returns the moderation labels found in a base64 data URI image.
// An empty slice means the image is acceptable.
func (m *ModerationService) CheckImage(ctx context.Context, dataURI string) ([]string, error) {
	data, err := decodeDataURI(dataURI)
	if err != nil {
		return nil, err
	}

	out, err := m.client.DetectModerationLabels(ctx, &rekognition.DetectModerationLabelsInput{
		Image:         &types.Image{Bytes: data},
		MinConfidence: aws.Float32(75),
	})
	if err != nil {
		return nil, err
	}

	var labels []string
	for _, l := range out.ModerationLabels {
		labels = append(labels, aws.ToString(l.Name))
	}
	return labels, nil
}
