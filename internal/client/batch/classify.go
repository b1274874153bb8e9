package batch

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/heartmarshall/batch-dashboard/internal/client/api"
	"github.com/heartmarshall/batch-dashboard/internal/domain"
)

// StartResult is an accepted batch start.
type StartResult struct {
	// TaskID is empty when the server accepted without reporting one.
	TaskID     string
	Message    string
	StatusCode int
	Data       map[string]any
}

// Classify interprets a batch-start response. The server answers an active
// run with 200 and a message rather than an error status, so a 200 is only
// a success when it carries a task ID or no such message.
func Classify(status int, body map[string]any) (*StartResult, error) {
	if body == nil {
		body = map[string]any{}
	}
	message, _ := api.StringField(body, "message")

	switch status {
	case http.StatusOK:
		if id, ok := taskID(body["task_id"]); ok {
			return &StartResult{TaskID: id, Message: message, StatusCode: status, Data: body}, nil
		}
		if strings.Contains(message, "already running") || strings.Contains(message, "pending") {
			return nil, &api.Error{Kind: api.KindAlreadyRunning, StatusCode: status, Message: message}
		}
		return &StartResult{Message: message, StatusCode: status, Data: body}, nil

	case http.StatusInternalServerError:
		if message == "" {
			message = "Internal server error occurred"
		}
		return nil, &api.Error{Kind: api.KindServer, StatusCode: status, Message: message}

	case http.StatusUnprocessableEntity:
		return nil, validationError(body)

	default:
		if message == "" {
			message = fmt.Sprintf("Request failed with status %d", status)
		}
		kind := api.KindUnclassified
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = api.KindAuth
		case http.StatusNotFound:
			kind = api.KindNotFound
		}
		return nil, &api.Error{Kind: kind, StatusCode: status, Message: message}
	}
}

func validationError(body map[string]any) *api.Error {
	primary, ok := api.StringField(body, "message")
	if !ok {
		primary, ok = api.StringField(body, "detail")
	}
	if !ok {
		primary = "Validation error occurred"
	}

	details, present := body["errors"]
	if !present || details == nil {
		details, present = body["details"]
	}

	err := &api.Error{Kind: api.KindValidation, StatusCode: http.StatusUnprocessableEntity, Message: primary}
	if !present || details == nil {
		return err
	}

	var pairs []string
	switch d := details.(type) {
	case []any:
		for _, item := range d {
			if s, ok := item.(string); ok {
				pairs = append(pairs, s)
				err.Fields = append(err.Fields, domain.FieldError{Message: s})
				continue
			}
			fe := listItem(item)
			pairs = append(pairs, fe.Field+": "+fe.Message)
			err.Fields = append(err.Fields, fe)
		}
	case map[string]any:
		keys := make([]string, 0, len(d))
		for k := range d {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg := text(d[k])
			pairs = append(pairs, k+": "+msg)
			err.Fields = append(err.Fields, domain.FieldError{Field: k, Message: msg})
		}
	default:
		return err
	}

	if len(pairs) > 0 {
		err.Message = primary + ": " + strings.Join(pairs, ", ")
	}
	return err
}

// listItem reads {field, message} from an errors-list entry, falling back to
// "Field" and to the entry's "error" text.
func listItem(item any) domain.FieldError {
	obj, ok := item.(map[string]any)
	if !ok {
		return domain.FieldError{Field: "Field", Message: text(item)}
	}

	field, ok := api.StringField(obj, "field")
	if !ok {
		field = "Field"
	}
	msg, ok := api.StringField(obj, "message")
	if !ok {
		msg, ok = api.StringField(obj, "error")
	}
	if !ok {
		msg = text(obj)
	}
	return domain.FieldError{Field: field, Message: msg}
}

func text(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	}
}

// taskID accepts any truthy task_id value.
func taskID(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, t != ""
	case bool:
		return "true", t
	case float64:
		if t == 0 || math.IsNaN(t) {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return text(t), true
	}
}
