package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ersonp/flight-desk/internal/domain/catalog"
	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/domain/ports"
)

// Tool names exposed to the model.
const (
	ToolGetTicketPrice      = "get_ticket_price"
	ToolGetAllDestinations  = "get_all_destinations"
	argDestinationCity      = "destination_city"
	unknownPrice            = "Unknown"
	noAdditionalInformation = "No additional information available"
	unknownFunction         = "Unknown function"
)

// ResolveFunc resolves raw destination text. Implementations may record or
// measure the call; they must not change the resolution.
type ResolveFunc func(ctx context.Context, raw string) entities.Resolution

// TicketPrice is the get_ticket_price tool result.
type TicketPrice struct {
	Price         string   `json:"price"`
	Destination   string   `json:"destination"`
	Info          string   `json:"info"`
	Found         bool     `json:"found"`
	TypoCorrected bool     `json:"typo_corrected,omitempty"`
	MatchedAlias  string   `json:"matched_alias,omitempty"`
	Suggestions   []string `json:"suggestions,omitempty"`
}

// NewTicketPrice converts a resolution of raw into the tool payload.
// Unresolved input keeps the caller's raw text as the destination.
func NewTicketPrice(raw string, res entities.Resolution) TicketPrice {
	switch r := res.(type) {
	case entities.Found:
		tp := TicketPrice{
			Price:         r.Price,
			Destination:   r.DisplayName,
			Info:          r.Description,
			Found:         true,
			TypoCorrected: r.Corrected,
		}
		if r.Corrected {
			tp.MatchedAlias = r.MatchedAlias
		}
		return tp
	case entities.NotFound:
		return TicketPrice{
			Price:       unknownPrice,
			Destination: raw,
			Info:        noAdditionalInformation,
			Suggestions: r.Suggestions,
		}
	}
	return TicketPrice{Price: unknownPrice, Destination: raw, Info: noAdditionalInformation}
}

// DestinationSummary is one row of the get_all_destinations result.
type DestinationSummary struct {
	City  string `json:"city"`
	Price string `json:"price"`
	Info  string `json:"info"`
}

// AllDestinations is the get_all_destinations tool result.
type AllDestinations struct {
	Destinations []DestinationSummary `json:"destinations"`
}

type toolError struct {
	Error string `json:"error"`
}

// ToolService answers the model's function calls.
type ToolService struct {
	catalog *catalog.Catalog
	resolve ResolveFunc
	observe func(tool string)
}

// NewToolService creates a new tool service. A nil resolve uses a plain
// Resolver with default options.
func NewToolService(c *catalog.Catalog, resolve ResolveFunc) *ToolService {
	if resolve == nil {
		r := NewResolver(c, DefaultResolverOptions())
		resolve = func(_ context.Context, raw string) entities.Resolution {
			return r.Resolve(raw)
		}
	}
	return &ToolService{
		catalog: c,
		resolve: resolve,
	}
}

// Definitions returns the function definitions offered to the model.
func (s *ToolService) Definitions() []ports.ToolDefinition {
	return []ports.ToolDefinition{
		{
			Name: ToolGetTicketPrice,
			Description: "Get the price of a return ticket to the destination city. Call this whenever you need to know the ticket price, " +
				"for example when a customer asks 'How much is a ticket to this city' or wants to compare prices.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					argDestinationCity: map[string]any{
						"type":        "string",
						"description": "The city that the customer wants to travel to",
					},
				},
				"required":             []string{argDestinationCity},
				"additionalProperties": false,
			},
		},
		{
			Name: ToolGetAllDestinations,
			Description: "Get all available destinations with their prices. Use this when customers ask about available destinations, " +
				"want to compare multiple prices, or ask for the cheapest/most expensive options.",
			Parameters: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{},
				"additionalProperties": false,
			},
		},
	}
}

// TicketPrice resolves city and returns its ticket price payload.
func (s *ToolService) TicketPrice(ctx context.Context, city string) TicketPrice {
	return NewTicketPrice(city, s.resolve(ctx, city))
}

// AllDestinations lists every catalog destination in catalog order.
func (s *ToolService) AllDestinations() AllDestinations {
	dests := s.catalog.Destinations()
	result := AllDestinations{Destinations: make([]DestinationSummary, 0, len(dests))}
	for _, d := range dests {
		info := d.Description
		if info == "" {
			info = noAdditionalInformation
		}
		result.Destinations = append(result.Destinations, DestinationSummary{
			City:  d.DisplayName,
			Price: d.Price,
			Info:  info,
		})
	}
	return result
}

// OnDispatch registers fn to be called with the tool name of every dispatched
// call. Unknown names are reported as "unknown".
func (s *ToolService) OnDispatch(fn func(tool string)) {
	s.observe = fn
}

// Dispatch runs one tool call and returns the tool message answering it.
// Failures are reported to the model inside the payload, never as errors.
func (s *ToolService) Dispatch(ctx context.Context, call ports.ToolCall) ports.ChatMessage {
	var payload any
	switch call.Name {
	case ToolGetTicketPrice:
		city, err := destinationCity(call.Arguments)
		if err != nil {
			payload = toolError{Error: err.Error()}
			break
		}
		payload = s.TicketPrice(ctx, city)
	case ToolGetAllDestinations:
		payload = s.AllDestinations()
	default:
		payload = toolError{Error: unknownFunction}
	}

	if s.observe != nil {
		name := call.Name
		if _, ok := payload.(toolError); ok && name != ToolGetTicketPrice {
			name = "unknown"
		}
		s.observe(name)
	}

	return ports.ChatMessage{
		Role:       ports.RoleTool,
		Content:    encodePayload(payload),
		ToolCallID: call.ID,
	}
}

// destinationCity extracts the destination_city argument.
func destinationCity(arguments string) (string, error) {
	if strings.TrimSpace(arguments) == "" {
		return "", fmt.Errorf("missing argument %s", argDestinationCity)
	}
	var args struct {
		DestinationCity *string `json:"destination_city"`
	}
	if err := json.Unmarshal([]byte(arguments), &args); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if args.DestinationCity == nil {
		return "", fmt.Errorf("missing argument %s", argDestinationCity)
	}
	return *args.DestinationCity, nil
}

func encodePayload(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		data, _ = json.Marshal(toolError{Error: fmt.Sprintf("encoding result: %v", err)})
	}
	return string(data)
}
