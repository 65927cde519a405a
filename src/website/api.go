package website

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
)

// apiFormValues reads the request body as either a JSON object or a
// regular form submission, depending on Content-Type. Both endpoints
// take flat string fields, so the two decode to the same shape.
func apiFormValues(c *RequestContext) (url.Values, error) {
	if strings.HasPrefix(c.Req.Header.Get("Content-Type"), "application/json") {
		var fields map[string]string
		err := json.NewDecoder(c.Req.Body).Decode(&fields)
		if err != nil {
			return nil, oops.New(err, "failed to decode json request body")
		}
		values := url.Values{}
		for key, value := range fields {
			values.Set(key, value)
		}
		return values, nil
	}
	return c.GetFormValues()
}

// APIContact accepts contact-form submissions. There is no outbound
// email yet; submissions are logged so they at least are not lost.
func APIContact(c *RequestContext) ResponseData {
	form, err := apiFormValues(c)
	if err != nil {
		return apiError(http.StatusBadRequest, "The submitted form could not be parsed.")
	}

	name := strings.TrimSpace(form.Get("name"))
	email := strings.TrimSpace(form.Get("email"))
	subject := strings.TrimSpace(form.Get("subject"))
	message := strings.TrimSpace(form.Get("message"))

	if name == "" || email == "" || subject == "" || message == "" {
		return apiError(http.StatusBadRequest, "All fields are required.")
	}

	c.Logger.Info().
		Str("name", name).
		Str("email", email).
		Str("subject", subject).
		Str("message", message).
		Msg("contact form submission")

	var res ResponseData
	res.WriteJson(map[string]any{"message": "Thanks for reaching out! We'll get back to you soon."})
	return res
}

func APINewsletter(c *RequestContext) ResponseData {
	form, err := apiFormValues(c)
	if err != nil {
		return apiError(http.StatusBadRequest, "The submitted form could not be parsed.")
	}

	email := strings.TrimSpace(form.Get("email"))
	if !strings.Contains(email, "@") {
		return apiError(http.StatusBadRequest, "Please provide a valid email address.")
	}

	err = scadata.SubscribeToNewsletter(c, c.Conn, email)
	if err != nil {
		if errors.Is(err, scadata.ErrAlreadySubscribed) {
			return apiError(http.StatusBadRequest, "This email is already subscribed")
		}
		res := apiError(http.StatusInternalServerError, "Something went wrong. Please try again later.")
		res.Errors = append(res.Errors, oops.New(err, "failed to subscribe to newsletter"))
		return res
	}

	var res ResponseData
	res.WriteJson(map[string]any{"message": "You're subscribed!"})
	return res
}

func apiError(status int, message string) ResponseData {
	var res ResponseData
	res.StatusCode = status
	res.WriteJson(map[string]any{"error": message})
	return res
}
