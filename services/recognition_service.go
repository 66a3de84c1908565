package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// RecognitionService forwards an image to the external recognition
// microservice and returns its top prediction.
type RecognitionService struct {
	baseURL string
	client  *http.Client
}

func NewRecognitionService(baseURL string) *RecognitionService {
	return &RecognitionService{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type predictionResponse struct {
	Prediction *struct {
		FoodClass  string  `json:"food_class"`
		Confidence float64 `json:"confidence"`
	} `json:"prediction"`
	Error string `json:"error"`
}

// Recognize uploads the image and returns the predicted food class with its
// confidence score.
func (s *RecognitionService) Recognize(filename string, image io.Reader) (string, float64, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", 0, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", 0, fmt.Errorf("failed to read image: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to finish upload form: %w", err)
	}

	url := s.baseURL + "/api/v1/image/predict"
	resp, err := s.client.Post(url, writer.FormDataContentType(), &body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to call recognition service: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read recognition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("recognition service error %d: %s", resp.StatusCode, string(respBody))
	}

	var pr predictionResponse
	if err := json.Unmarshal(respBody, &pr); err != nil {
		return "", 0, fmt.Errorf("failed to parse recognition response: %w", err)
	}
	if pr.Error != "" {
		return "", 0, fmt.Errorf("recognition service: %s", pr.Error)
	}
	if pr.Prediction == nil || pr.Prediction.FoodClass == "" {
		return "", 0, fmt.Errorf("no food recognized in image")
	}
	return pr.Prediction.FoodClass, pr.Prediction.Confidence, nil
}
