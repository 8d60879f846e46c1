// Copyright 2026 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package royaltextiles

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// A SchedulingClient talks to the external installation scheduling
// service of the company.
type SchedulingClient struct {
	// BaseURL of the scheduling service
	BaseURL string

	http *http.Client
}

// NewSchedulingClient returns a SchedulingClient for the service at
// the given base URL.
func NewSchedulingClient(baseURL string) *SchedulingClient {
	return &SchedulingClient{
		BaseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Schedule books an installation visit with the given reference on
// the given date. It returns an error if the service refuses the
// booking.
func (sc *SchedulingClient) Schedule(reference, date string) error {
	payload, err := json.Marshal(map[string]string{
		"reference": reference,
		"date":      date,
	})
	if err != nil {
		return errors.Wrap(err, "unable to encode scheduling request")
	}
	resp, err := sc.http.Post(sc.BaseURL+"/schedule", "application/json", bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "unable to reach scheduling service")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("scheduling service refused the booking (status %d)", resp.StatusCode)
	}
	var res struct {
		Scheduled bool   `json:"scheduled"`
		Reference string `json:"reference"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return errors.Wrap(err, "unable to decode scheduling response")
	}
	if !res.Scheduled {
		return errors.Errorf("scheduling service did not confirm booking %s", reference)
	}
	return nil
}

// Status returns the status of the booking with the given reference
func (sc *SchedulingClient) Status(reference string) (string, error) {
	resp, err := sc.http.Get(sc.BaseURL + "/status/" + reference)
	if err != nil {
		return "", errors.Wrap(err, "unable to reach scheduling service")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("scheduling service error (status %d)", resp.StatusCode)
	}
	var res struct {
		Status string `json:"status"`
	}
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", errors.Wrap(err, "unable to decode status response")
	}
	return res.Status, nil
}
