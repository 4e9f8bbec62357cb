package agent

import (
	"context"
	"fmt"

	"github.com/murugan/khata"
	"github.com/murugan/khata/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// BookLoader returns the current credit book. The bookkeeper reloads it on
// every call so answers reflect the file on disk.
type BookLoader func() (*khata.Book, error)

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user runs a small trading business and keeps a credit book: customer balances,
			cash pockets, dealer purchases and expenses. Amounts are in Indian rupees.
			He is here primarily to understand who owes what and where his cash is.

			Devise a plan of questions to ask the experts and come up with the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert in charge of reading the credit book.
func NewBookkeeper(load BookLoader) *Expert {
	lib := []Function{
		customersFunc(load),
		statementFunc(load),
		dashboardFunc(load),
		reminderFunc(load),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's credit book.
		He can list customers with their balances, produce a single customer's statement,
		report the dashboard figures (outstanding, today's purchases, expenses, cash pockets),
		and draft the WhatsApp reminder message for a customer.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's credit book.
				You know how to use the Tools to extract relevant information about customers,
				balances, purchases, expenses and cash pockets.
				You are part of a team of experts, yours is everything recorded in the book.
				Pardon their approximative language and figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a Function from a declaration and a closure.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func customersFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Customers",
			Description: `Customers lists every customer in the book with mobile number and outstanding balance.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all customers with their balances.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			book, err := load()
			if err != nil {
				return errResponse(id, "Customers", err)
			}
			return okResponse(id, "Customers", renderer.Customers(book))
		},
	}
}

func statementFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Statement",
			Description: `Statement returns one customer's full transaction history in date order,
			with the running balance.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"customer": {
						Type:        genai.TypeString,
						Description: "The customer's id or name.",
					},
				},
				Required: []string{"customer"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted statement for the customer.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ref, ok := args["customer"].(string)
			if !ok {
				return errResponse(id, "Statement", fmt.Errorf("argument 'customer' is not a string but %T", args["customer"]))
			}
			book, err := load()
			if err != nil {
				return errResponse(id, "Statement", err)
			}
			c, err := book.FindCustomer(ref)
			if err != nil {
				return errResponse(id, "Statement", err)
			}
			st, err := book.BuildStatement(c.ID)
			if err != nil {
				return errResponse(id, "Statement", err)
			}
			return okResponse(id, "Statement", renderer.Statement(st))
		},
	}
}

func reminderFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Reminder",
			Description: `Reminder drafts the payment reminder message for one customer from the
			stored template, and the wa.me link when the customer has a usable mobile number.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"customer": {
						Type:        genai.TypeString,
						Description: "The customer's id or name.",
					},
				},
				Required: []string{"customer"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The reminder message, followed by the WhatsApp link when available.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ref, ok := args["customer"].(string)
			if !ok {
				return errResponse(id, "Reminder", fmt.Errorf("argument 'customer' is not a string but %T", args["customer"]))
			}
			book, err := load()
			if err != nil {
				return errResponse(id, "Reminder", err)
			}
			c, err := book.FindCustomer(ref)
			if err != nil {
				return errResponse(id, "Reminder", err)
			}
			out := book.ReminderMessage(c)
			if link, err := book.ReminderLink(c, ""); err == nil {
				out += "\n" + link
			}
			return okResponse(id, "Reminder", out)
		},
	}
}

func dashboardFunc(load BookLoader) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Dashboard",
			Description: `Dashboard reports the book's headline figures: total outstanding credit,
			today's dealer purchases, all-time expenses, cash pocket balances and recent activity.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			book, err := load()
			if err != nil {
				return errResponse(id, "Dashboard", err)
			}
			return okResponse(id, "Dashboard", renderer.Dashboard(book.ComputeTotals(), book.Cash(), book.Recent(20)))
		},
	}
}
