package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MyEquipment lists equipment owned by the current user
func (c *Client) MyEquipment(ctx context.Context) ([]Equipment, error) {
	var equipment []Equipment
	if err := c.getJSON(ctx, "/equipment/user", &equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// AllEquipment lists the public equipment catalog. No session is required.
// A malformed or non-array payload yields an empty slice rather than an
// error, so the public listing never breaks on backend shape drift.
func (c *Client) AllEquipment(ctx context.Context) ([]Equipment, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/equipment/all", &raw); err != nil {
		return nil, err
	}

	var equipment []Equipment
	if err := json.Unmarshal(raw, &equipment); err != nil {
		return []Equipment{}, nil
	}
	if equipment == nil {
		equipment = []Equipment{}
	}
	return equipment, nil
}

// CreateEquipment submits new equipment as a multipart form. The image is
// required and its absence is rejected before any network call.
func (c *Client) CreateEquipment(ctx context.Context, form EquipmentForm) (*Equipment, error) {
	if err := form.Validate(true); err != nil {
		return nil, err
	}
	return c.submitEquipment(ctx, http.MethodPost, "/equipment", form)
}

// UpdateEquipment updates existing equipment. The image is optional; when
// absent the backend keeps the stored one.
func (c *Client) UpdateEquipment(ctx context.Context, id string, form EquipmentForm) (*Equipment, error) {
	if err := form.Validate(false); err != nil {
		return nil, err
	}
	return c.submitEquipment(ctx, http.MethodPut, "/equipment/"+id, form)
}

// DeleteEquipment removes a piece of equipment
func (c *Client) DeleteEquipment(ctx context.Context, id string) error {
	return c.delete(ctx, "/equipment/"+id)
}

func (c *Client) submitEquipment(ctx context.Context, method, path string, form EquipmentForm) (*Equipment, error) {
	body, contentType, err := encodeEquipmentForm(form)
	if err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	var equipment Equipment
	if err := c.do(req, &equipment); err != nil {
		return nil, err
	}
	return &equipment, nil
}

// encodeEquipmentForm serializes the form to the backend's multipart contract:
// plain text fields, the availability window as a JSON availabilityDate field,
// and the image as the binary file part.
func encodeEquipmentForm(form EquipmentForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":          form.Name,
		"description":   form.Description,
		"condition":     string(form.Condition),
		"rentalPrice":   form.RentalPrice,
		"ownerName":     form.OwnerName,
		"address":       form.Address,
		"contactNumber": form.ContactNumber,
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to write %s field: %w", key, err)
		}
	}

	window, err := json.Marshal(form.Availability)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal availability window: %w", err)
	}
	if err := w.WriteField("availabilityDate", string(window)); err != nil {
		return nil, "", fmt.Errorf("failed to write availabilityDate field: %w", err)
	}

	if form.Image != nil {
		part, err := w.CreateFormFile("image", form.Image.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create image part: %w", err)
		}
		if _, err := io.Copy(part, form.Image.Reader); err != nil {
			return nil, "", fmt.Errorf("failed to copy image data: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
