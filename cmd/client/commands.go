package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/joycesaquino/customer/internal/adapter"
	"github.com/joycesaquino/customer/internal/utils"
	"github.com/joycesaquino/customer/models"
)

var (
	errUnknownCommand  = errors.New("unknown command")
	errMissingArgument = errors.New("missing argument")
)

const usage = `usage: customer-client [-a address] [-t timeout] [-token bearer] <command> [args]

commands:
  list                                   list all customers
  get <id>                               show one customer
  by-email <email>                       find a customer by email
  create -first F -last L -email E [-phone P] [-status S]
  update <id> -first F -last L -email E [-phone P] [-status S]
  delete <id>                            delete a customer
  version                                show client and server versions
  token -key K -sub S [-roles a,b] [-ttl 1h] [-issuer I] [-claim roles]
`

// commandLine executes one client command against the customer service.
type commandLine struct {
	adapter adapter.CustomerAdapter
	out     io.Writer
	build   string
}

func (c *commandLine) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		_, _ = io.WriteString(c.out, usage)
		return fmt.Errorf("%w: command", errMissingArgument)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		customers, err := c.adapter.ListCustomers(ctx)
		if err != nil {
			return err
		}
		if customers == nil {
			customers = []models.CustomerDTO{}
		}
		return c.print(customers)
	case "get":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		customer, err := c.adapter.GetCustomerByID(ctx, id)
		if err != nil {
			return err
		}
		return c.print(customer)
	case "by-email":
		if len(rest) == 0 || strings.TrimSpace(rest[0]) == "" {
			return fmt.Errorf("%w: email", errMissingArgument)
		}
		customer, err := c.adapter.GetCustomerByEmail(ctx, rest[0])
		if err != nil {
			return err
		}
		return c.print(customer)
	case "create":
		input, err := parseCustomerFlags("create", rest)
		if err != nil {
			return err
		}
		customer, err := c.adapter.CreateCustomer(ctx, models.CustomerCreate(input))
		if err != nil {
			return err
		}
		return c.print(customer)
	case "update":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		input, err := parseCustomerFlags("update", rest[1:])
		if err != nil {
			return err
		}
		customer, err := c.adapter.UpdateCustomer(ctx, id, input)
		if err != nil {
			return err
		}
		return c.print(customer)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		if err = c.adapter.DeleteCustomer(ctx, id); err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.out, "customer %d deleted\n", id)
		return err
	case "version":
		info, err := c.adapter.GetAppInfo(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(c.out, "client: %s\nserver: %s\n", c.build, info.Version)
		return err
	case "token":
		return c.token(rest)
	default:
		_, _ = io.WriteString(c.out, usage)
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}
}

func (c *commandLine) print(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	_, err = fmt.Fprintln(c.out, string(data))
	return err
}

// token signs a bearer token locally for calling a service that shares the
// same sign key.
func (c *commandLine) token(args []string) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	key := fs.String("key", "", "HMAC sign key")
	subject := fs.String("sub", "", "token subject")
	roles := fs.String("roles", "", "comma separated roles")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	issuer := fs.String("issuer", "", "token issuer")
	claim := fs.String("claim", "roles", "roles claim name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var roleList []string
	for _, role := range strings.Split(*roles, ",") {
		if role = strings.TrimSpace(role); role != "" {
			roleList = append(roleList, role)
		}
	}

	signed, err := utils.GenerateJWTToken(*issuer, *subject, roleList, *claim, *ttl, *key)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.out, signed)
	return err
}

func parseID(args []string) (models.CustomerID, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("%w: id", errMissingArgument)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid customer id %q: %w", args[0], err)
	}
	return models.CustomerID(id), nil
}

func parseCustomerFlags(name string, args []string) (models.CustomerUpdate, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	email := fs.String("email", "", "email")
	phone := fs.String("phone", "", "phone")
	status := fs.String("status", "", "ACTIVE, INACTIVE or SUSPENDED")
	if err := fs.Parse(args); err != nil {
		return models.CustomerUpdate{}, err
	}

	input := models.CustomerUpdate{
		FirstName: *first,
		LastName:  *last,
		Email:     *email,
		Status:    models.CustomerStatus(strings.ToUpper(*status)),
	}
	if *phone != "" {
		input.Phone = phone
	}

	return input, nil
}
