// Package apiconnect holds the Connect handler and client constructors of
// the consorcio services. Every constructor installs the api JSON codec.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/consorcio/pkg/api"
)

// This is a compile-time assertion to ensure that this file and the connect
// package are compatible.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// ParticipantServiceName is the fully-qualified name of the ParticipantService service.
	ParticipantServiceName = "consorcio.v1.ParticipantService"

	// ExpenseServiceName is the fully-qualified name of the ExpenseService service.
	ExpenseServiceName = "consorcio.v1.ExpenseService"

	// PaymentServiceName is the fully-qualified name of the PaymentService service.
	PaymentServiceName = "consorcio.v1.PaymentService"

	// SummaryServiceName is the fully-qualified name of the SummaryService service.
	SummaryServiceName = "consorcio.v1.SummaryService"

	// AuthServiceName is the fully-qualified name of the AuthService service.
	AuthServiceName = "consorcio.v1.AuthService"
)

// Procedure names of every RPC.
const (
	ParticipantServiceCreateParticipantProcedure     = "/consorcio.v1.ParticipantService/CreateParticipant"
	ParticipantServiceGetParticipantProcedure        = "/consorcio.v1.ParticipantService/GetParticipant"
	ParticipantServiceListParticipantsProcedure      = "/consorcio.v1.ParticipantService/ListParticipants"
	ParticipantServiceUpdateParticipantProcedure     = "/consorcio.v1.ParticipantService/UpdateParticipant"
	ParticipantServiceDeleteParticipantProcedure     = "/consorcio.v1.ParticipantService/DeleteParticipant"
	ExpenseServiceCreateExpenseProcedure             = "/consorcio.v1.ExpenseService/CreateExpense"
	ExpenseServiceGetExpenseProcedure                = "/consorcio.v1.ExpenseService/GetExpense"
	ExpenseServiceListExpensesProcedure              = "/consorcio.v1.ExpenseService/ListExpenses"
	ExpenseServiceListExpensesByParticipantProcedure = "/consorcio.v1.ExpenseService/ListExpensesByParticipant"
	PaymentServiceCreatePaymentProcedure             = "/consorcio.v1.PaymentService/CreatePayment"
	PaymentServiceGetPaymentProcedure                = "/consorcio.v1.PaymentService/GetPayment"
	PaymentServiceListPaymentsProcedure              = "/consorcio.v1.PaymentService/ListPayments"
	PaymentServiceListPaymentsByParticipantProcedure = "/consorcio.v1.PaymentService/ListPaymentsByParticipant"
	SummaryServiceGetBalancesProcedure               = "/consorcio.v1.SummaryService/GetBalances"
	SummaryServiceGetSummaryProcedure                = "/consorcio.v1.SummaryService/GetSummary"
	SummaryServiceProposeSettlementProcedure         = "/consorcio.v1.SummaryService/ProposeSettlement"
	SummaryServiceSubmitSettlementProcedure          = "/consorcio.v1.SummaryService/SubmitSettlement"
	AuthServiceRegisterProcedure                     = "/consorcio.v1.AuthService/Register"
	AuthServiceLoginProcedure                        = "/consorcio.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure               = "/consorcio.v1.AuthService/GetCurrentUser"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(api.Codec{})}, opts...)
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)
}

// ParticipantServiceClient is a client for the consorcio.v1.ParticipantService service.
type ParticipantServiceClient interface {
	CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error)
	GetParticipant(context.Context, *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceClient constructs a client for the consorcio.v1.ParticipantService service.
//
// The URL supplied here should be the base URL for the server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewParticipantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ParticipantServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &participantServiceClient{
		createParticipant: connect.NewClient[api.CreateParticipantRequest, api.CreateParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceCreateParticipantProcedure,
			opts...,
		),
		getParticipant: connect.NewClient[api.GetParticipantRequest, api.GetParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceGetParticipantProcedure,
			opts...,
		),
		listParticipants: connect.NewClient[api.ListParticipantsRequest, api.ListParticipantsResponse](
			httpClient,
			baseURL+ParticipantServiceListParticipantsProcedure,
			opts...,
		),
		updateParticipant: connect.NewClient[api.UpdateParticipantRequest, api.UpdateParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceUpdateParticipantProcedure,
			opts...,
		),
		deleteParticipant: connect.NewClient[api.DeleteParticipantRequest, api.DeleteParticipantResponse](
			httpClient,
			baseURL+ParticipantServiceDeleteParticipantProcedure,
			opts...,
		),
	}
}

type participantServiceClient struct {
	createParticipant *connect.Client[api.CreateParticipantRequest, api.CreateParticipantResponse]
	getParticipant *connect.Client[api.GetParticipantRequest, api.GetParticipantResponse]
	listParticipants *connect.Client[api.ListParticipantsRequest, api.ListParticipantsResponse]
	updateParticipant *connect.Client[api.UpdateParticipantRequest, api.UpdateParticipantResponse]
	deleteParticipant *connect.Client[api.DeleteParticipantRequest, api.DeleteParticipantResponse]
}

// CreateParticipant calls consorcio.v1.ParticipantService.CreateParticipant.
func (c *participantServiceClient) CreateParticipant(ctx context.Context, req *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error) {
	return c.createParticipant.CallUnary(ctx, req)
}

// GetParticipant calls consorcio.v1.ParticipantService.GetParticipant.
func (c *participantServiceClient) GetParticipant(ctx context.Context, req *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error) {
	return c.getParticipant.CallUnary(ctx, req)
}

// ListParticipants calls consorcio.v1.ParticipantService.ListParticipants.
func (c *participantServiceClient) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	return c.listParticipants.CallUnary(ctx, req)
}

// UpdateParticipant calls consorcio.v1.ParticipantService.UpdateParticipant.
func (c *participantServiceClient) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	return c.updateParticipant.CallUnary(ctx, req)
}

// DeleteParticipant calls consorcio.v1.ParticipantService.DeleteParticipant.
func (c *participantServiceClient) DeleteParticipant(ctx context.Context, req *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error) {
	return c.deleteParticipant.CallUnary(ctx, req)
}

// ParticipantServiceHandler is an implementation of the consorcio.v1.ParticipantService service.
type ParticipantServiceHandler interface {
	CreateParticipant(context.Context, *connect.Request[api.CreateParticipantRequest]) (*connect.Response[api.CreateParticipantResponse], error)
	GetParticipant(context.Context, *connect.Request[api.GetParticipantRequest]) (*connect.Response[api.GetParticipantResponse], error)
	ListParticipants(context.Context, *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error)
	UpdateParticipant(context.Context, *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error)
	DeleteParticipant(context.Context, *connect.Request[api.DeleteParticipantRequest]) (*connect.Response[api.DeleteParticipantResponse], error)
}

// NewParticipantServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewParticipantServiceHandler(svc ParticipantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	participantServiceCreateParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceCreateParticipantProcedure,
		svc.CreateParticipant,
		opts...,
	)
	participantServiceGetParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceGetParticipantProcedure,
		svc.GetParticipant,
		opts...,
	)
	participantServiceListParticipantsHandler := connect.NewUnaryHandler(
		ParticipantServiceListParticipantsProcedure,
		svc.ListParticipants,
		opts...,
	)
	participantServiceUpdateParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceUpdateParticipantProcedure,
		svc.UpdateParticipant,
		opts...,
	)
	participantServiceDeleteParticipantHandler := connect.NewUnaryHandler(
		ParticipantServiceDeleteParticipantProcedure,
		svc.DeleteParticipant,
		opts...,
	)
	return "/consorcio.v1.ParticipantService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ParticipantServiceCreateParticipantProcedure:
			participantServiceCreateParticipantHandler.ServeHTTP(w, r)
		case ParticipantServiceGetParticipantProcedure:
			participantServiceGetParticipantHandler.ServeHTTP(w, r)
		case ParticipantServiceListParticipantsProcedure:
			participantServiceListParticipantsHandler.ServeHTTP(w, r)
		case ParticipantServiceUpdateParticipantProcedure:
			participantServiceUpdateParticipantHandler.ServeHTTP(w, r)
		case ParticipantServiceDeleteParticipantProcedure:
			participantServiceDeleteParticipantHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// ExpenseServiceClient is a client for the consorcio.v1.ExpenseService service.
type ExpenseServiceClient interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	ListExpensesByParticipant(context.Context, *connect.Request[api.ListExpensesByParticipantRequest]) (*connect.Response[api.ListExpensesByParticipantResponse], error)
}

// NewExpenseServiceClient constructs a client for the consorcio.v1.ExpenseService service.
//
// The URL supplied here should be the base URL for the server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &expenseServiceClient{
		createExpense: connect.NewClient[api.CreateExpenseRequest, api.CreateExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceCreateExpenseProcedure,
			opts...,
		),
		getExpense: connect.NewClient[api.GetExpenseRequest, api.GetExpenseResponse](
			httpClient,
			baseURL+ExpenseServiceGetExpenseProcedure,
			opts...,
		),
		listExpenses: connect.NewClient[api.ListExpensesRequest, api.ListExpensesResponse](
			httpClient,
			baseURL+ExpenseServiceListExpensesProcedure,
			opts...,
		),
		listExpensesByParticipant: connect.NewClient[api.ListExpensesByParticipantRequest, api.ListExpensesByParticipantResponse](
			httpClient,
			baseURL+ExpenseServiceListExpensesByParticipantProcedure,
			opts...,
		),
	}
}

type expenseServiceClient struct {
	createExpense *connect.Client[api.CreateExpenseRequest, api.CreateExpenseResponse]
	getExpense *connect.Client[api.GetExpenseRequest, api.GetExpenseResponse]
	listExpenses *connect.Client[api.ListExpensesRequest, api.ListExpensesResponse]
	listExpensesByParticipant *connect.Client[api.ListExpensesByParticipantRequest, api.ListExpensesByParticipantResponse]
}

// CreateExpense calls consorcio.v1.ExpenseService.CreateExpense.
func (c *expenseServiceClient) CreateExpense(ctx context.Context, req *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error) {
	return c.createExpense.CallUnary(ctx, req)
}

// GetExpense calls consorcio.v1.ExpenseService.GetExpense.
func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

// ListExpenses calls consorcio.v1.ExpenseService.ListExpenses.
func (c *expenseServiceClient) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

// ListExpensesByParticipant calls consorcio.v1.ExpenseService.ListExpensesByParticipant.
func (c *expenseServiceClient) ListExpensesByParticipant(ctx context.Context, req *connect.Request[api.ListExpensesByParticipantRequest]) (*connect.Response[api.ListExpensesByParticipantResponse], error) {
	return c.listExpensesByParticipant.CallUnary(ctx, req)
}

// ExpenseServiceHandler is an implementation of the consorcio.v1.ExpenseService service.
type ExpenseServiceHandler interface {
	CreateExpense(context.Context, *connect.Request[api.CreateExpenseRequest]) (*connect.Response[api.CreateExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error)
	ListExpensesByParticipant(context.Context, *connect.Request[api.ListExpensesByParticipantRequest]) (*connect.Response[api.ListExpensesByParticipantResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	expenseServiceCreateExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceCreateExpenseProcedure,
		svc.CreateExpense,
		opts...,
	)
	expenseServiceGetExpenseHandler := connect.NewUnaryHandler(
		ExpenseServiceGetExpenseProcedure,
		svc.GetExpense,
		opts...,
	)
	expenseServiceListExpensesHandler := connect.NewUnaryHandler(
		ExpenseServiceListExpensesProcedure,
		svc.ListExpenses,
		opts...,
	)
	expenseServiceListExpensesByParticipantHandler := connect.NewUnaryHandler(
		ExpenseServiceListExpensesByParticipantProcedure,
		svc.ListExpensesByParticipant,
		opts...,
	)
	return "/consorcio.v1.ExpenseService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ExpenseServiceCreateExpenseProcedure:
			expenseServiceCreateExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceGetExpenseProcedure:
			expenseServiceGetExpenseHandler.ServeHTTP(w, r)
		case ExpenseServiceListExpensesProcedure:
			expenseServiceListExpensesHandler.ServeHTTP(w, r)
		case ExpenseServiceListExpensesByParticipantProcedure:
			expenseServiceListExpensesByParticipantHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// PaymentServiceClient is a client for the consorcio.v1.PaymentService service.
type PaymentServiceClient interface {
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error)
	GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	ListPaymentsByParticipant(context.Context, *connect.Request[api.ListPaymentsByParticipantRequest]) (*connect.Response[api.ListPaymentsByParticipantResponse], error)
}

// NewPaymentServiceClient constructs a client for the consorcio.v1.PaymentService service.
//
// The URL supplied here should be the base URL for the server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaymentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &paymentServiceClient{
		createPayment: connect.NewClient[api.CreatePaymentRequest, api.CreatePaymentResponse](
			httpClient,
			baseURL+PaymentServiceCreatePaymentProcedure,
			opts...,
		),
		getPayment: connect.NewClient[api.GetPaymentRequest, api.GetPaymentResponse](
			httpClient,
			baseURL+PaymentServiceGetPaymentProcedure,
			opts...,
		),
		listPayments: connect.NewClient[api.ListPaymentsRequest, api.ListPaymentsResponse](
			httpClient,
			baseURL+PaymentServiceListPaymentsProcedure,
			opts...,
		),
		listPaymentsByParticipant: connect.NewClient[api.ListPaymentsByParticipantRequest, api.ListPaymentsByParticipantResponse](
			httpClient,
			baseURL+PaymentServiceListPaymentsByParticipantProcedure,
			opts...,
		),
	}
}

type paymentServiceClient struct {
	createPayment *connect.Client[api.CreatePaymentRequest, api.CreatePaymentResponse]
	getPayment *connect.Client[api.GetPaymentRequest, api.GetPaymentResponse]
	listPayments *connect.Client[api.ListPaymentsRequest, api.ListPaymentsResponse]
	listPaymentsByParticipant *connect.Client[api.ListPaymentsByParticipantRequest, api.ListPaymentsByParticipantResponse]
}

// CreatePayment calls consorcio.v1.PaymentService.CreatePayment.
func (c *paymentServiceClient) CreatePayment(ctx context.Context, req *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error) {
	return c.createPayment.CallUnary(ctx, req)
}

// GetPayment calls consorcio.v1.PaymentService.GetPayment.
func (c *paymentServiceClient) GetPayment(ctx context.Context, req *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error) {
	return c.getPayment.CallUnary(ctx, req)
}

// ListPayments calls consorcio.v1.PaymentService.ListPayments.
func (c *paymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

// ListPaymentsByParticipant calls consorcio.v1.PaymentService.ListPaymentsByParticipant.
func (c *paymentServiceClient) ListPaymentsByParticipant(ctx context.Context, req *connect.Request[api.ListPaymentsByParticipantRequest]) (*connect.Response[api.ListPaymentsByParticipantResponse], error) {
	return c.listPaymentsByParticipant.CallUnary(ctx, req)
}

// PaymentServiceHandler is an implementation of the consorcio.v1.PaymentService service.
type PaymentServiceHandler interface {
	CreatePayment(context.Context, *connect.Request[api.CreatePaymentRequest]) (*connect.Response[api.CreatePaymentResponse], error)
	GetPayment(context.Context, *connect.Request[api.GetPaymentRequest]) (*connect.Response[api.GetPaymentResponse], error)
	ListPayments(context.Context, *connect.Request[api.ListPaymentsRequest]) (*connect.Response[api.ListPaymentsResponse], error)
	ListPaymentsByParticipant(context.Context, *connect.Request[api.ListPaymentsByParticipantRequest]) (*connect.Response[api.ListPaymentsByParticipantResponse], error)
}

// NewPaymentServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	paymentServiceCreatePaymentHandler := connect.NewUnaryHandler(
		PaymentServiceCreatePaymentProcedure,
		svc.CreatePayment,
		opts...,
	)
	paymentServiceGetPaymentHandler := connect.NewUnaryHandler(
		PaymentServiceGetPaymentProcedure,
		svc.GetPayment,
		opts...,
	)
	paymentServiceListPaymentsHandler := connect.NewUnaryHandler(
		PaymentServiceListPaymentsProcedure,
		svc.ListPayments,
		opts...,
	)
	paymentServiceListPaymentsByParticipantHandler := connect.NewUnaryHandler(
		PaymentServiceListPaymentsByParticipantProcedure,
		svc.ListPaymentsByParticipant,
		opts...,
	)
	return "/consorcio.v1.PaymentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PaymentServiceCreatePaymentProcedure:
			paymentServiceCreatePaymentHandler.ServeHTTP(w, r)
		case PaymentServiceGetPaymentProcedure:
			paymentServiceGetPaymentHandler.ServeHTTP(w, r)
		case PaymentServiceListPaymentsProcedure:
			paymentServiceListPaymentsHandler.ServeHTTP(w, r)
		case PaymentServiceListPaymentsByParticipantProcedure:
			paymentServiceListPaymentsByParticipantHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// SummaryServiceClient is a client for the consorcio.v1.SummaryService service.
type SummaryServiceClient interface {
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	ProposeSettlement(context.Context, *connect.Request[api.ProposeSettlementRequest]) (*connect.Response[api.ProposeSettlementResponse], error)
	SubmitSettlement(context.Context, *connect.Request[api.SubmitSettlementRequest]) (*connect.Response[api.SubmitSettlementResponse], error)
}

// NewSummaryServiceClient constructs a client for the consorcio.v1.SummaryService service.
//
// The URL supplied here should be the base URL for the server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewSummaryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SummaryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &summaryServiceClient{
		getBalances: connect.NewClient[api.GetBalancesRequest, api.GetBalancesResponse](
			httpClient,
			baseURL+SummaryServiceGetBalancesProcedure,
			opts...,
		),
		getSummary: connect.NewClient[api.GetSummaryRequest, api.GetSummaryResponse](
			httpClient,
			baseURL+SummaryServiceGetSummaryProcedure,
			opts...,
		),
		proposeSettlement: connect.NewClient[api.ProposeSettlementRequest, api.ProposeSettlementResponse](
			httpClient,
			baseURL+SummaryServiceProposeSettlementProcedure,
			opts...,
		),
		submitSettlement: connect.NewClient[api.SubmitSettlementRequest, api.SubmitSettlementResponse](
			httpClient,
			baseURL+SummaryServiceSubmitSettlementProcedure,
			opts...,
		),
	}
}

type summaryServiceClient struct {
	getBalances *connect.Client[api.GetBalancesRequest, api.GetBalancesResponse]
	getSummary *connect.Client[api.GetSummaryRequest, api.GetSummaryResponse]
	proposeSettlement *connect.Client[api.ProposeSettlementRequest, api.ProposeSettlementResponse]
	submitSettlement *connect.Client[api.SubmitSettlementRequest, api.SubmitSettlementResponse]
}

// GetBalances calls consorcio.v1.SummaryService.GetBalances.
func (c *summaryServiceClient) GetBalances(ctx context.Context, req *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

// GetSummary calls consorcio.v1.SummaryService.GetSummary.
func (c *summaryServiceClient) GetSummary(ctx context.Context, req *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

// ProposeSettlement calls consorcio.v1.SummaryService.ProposeSettlement.
func (c *summaryServiceClient) ProposeSettlement(ctx context.Context, req *connect.Request[api.ProposeSettlementRequest]) (*connect.Response[api.ProposeSettlementResponse], error) {
	return c.proposeSettlement.CallUnary(ctx, req)
}

// SubmitSettlement calls consorcio.v1.SummaryService.SubmitSettlement.
func (c *summaryServiceClient) SubmitSettlement(ctx context.Context, req *connect.Request[api.SubmitSettlementRequest]) (*connect.Response[api.SubmitSettlementResponse], error) {
	return c.submitSettlement.CallUnary(ctx, req)
}

// SummaryServiceHandler is an implementation of the consorcio.v1.SummaryService service.
type SummaryServiceHandler interface {
	GetBalances(context.Context, *connect.Request[api.GetBalancesRequest]) (*connect.Response[api.GetBalancesResponse], error)
	GetSummary(context.Context, *connect.Request[api.GetSummaryRequest]) (*connect.Response[api.GetSummaryResponse], error)
	ProposeSettlement(context.Context, *connect.Request[api.ProposeSettlementRequest]) (*connect.Response[api.ProposeSettlementResponse], error)
	SubmitSettlement(context.Context, *connect.Request[api.SubmitSettlementRequest]) (*connect.Response[api.SubmitSettlementResponse], error)
}

// NewSummaryServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewSummaryServiceHandler(svc SummaryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	summaryServiceGetBalancesHandler := connect.NewUnaryHandler(
		SummaryServiceGetBalancesProcedure,
		svc.GetBalances,
		opts...,
	)
	summaryServiceGetSummaryHandler := connect.NewUnaryHandler(
		SummaryServiceGetSummaryProcedure,
		svc.GetSummary,
		opts...,
	)
	summaryServiceProposeSettlementHandler := connect.NewUnaryHandler(
		SummaryServiceProposeSettlementProcedure,
		svc.ProposeSettlement,
		opts...,
	)
	summaryServiceSubmitSettlementHandler := connect.NewUnaryHandler(
		SummaryServiceSubmitSettlementProcedure,
		svc.SubmitSettlement,
		opts...,
	)
	return "/consorcio.v1.SummaryService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case SummaryServiceGetBalancesProcedure:
			summaryServiceGetBalancesHandler.ServeHTTP(w, r)
		case SummaryServiceGetSummaryProcedure:
			summaryServiceGetSummaryHandler.ServeHTTP(w, r)
		case SummaryServiceProposeSettlementProcedure:
			summaryServiceProposeSettlementHandler.ServeHTTP(w, r)
		case SummaryServiceSubmitSettlementProcedure:
			summaryServiceSubmitSettlementHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AuthServiceClient is a client for the consorcio.v1.AuthService service.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceClient constructs a client for the consorcio.v1.AuthService service.
//
// The URL supplied here should be the base URL for the server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register: connect.NewClient[api.RegisterRequest, api.RegisterResponse](
			httpClient,
			baseURL+AuthServiceRegisterProcedure,
			opts...,
		),
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](
			httpClient,
			baseURL+AuthServiceLoginProcedure,
			opts...,
		),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](
			httpClient,
			baseURL+AuthServiceGetCurrentUserProcedure,
			opts...,
		),
	}
}

type authServiceClient struct {
	register *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

// Register calls consorcio.v1.AuthService.Register.
func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

// Login calls consorcio.v1.AuthService.Login.
func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// GetCurrentUser calls consorcio.v1.AuthService.GetCurrentUser.
func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// AuthServiceHandler is an implementation of the consorcio.v1.AuthService service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	authServiceRegisterHandler := connect.NewUnaryHandler(
		AuthServiceRegisterProcedure,
		svc.Register,
		opts...,
	)
	authServiceLoginHandler := connect.NewUnaryHandler(
		AuthServiceLoginProcedure,
		svc.Login,
		opts...,
	)
	authServiceGetCurrentUserHandler := connect.NewUnaryHandler(
		AuthServiceGetCurrentUserProcedure,
		svc.GetCurrentUser,
		opts...,
	)
	return "/consorcio.v1.AuthService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AuthServiceRegisterProcedure:
			authServiceRegisterHandler.ServeHTTP(w, r)
		case AuthServiceLoginProcedure:
			authServiceLoginHandler.ServeHTTP(w, r)
		case AuthServiceGetCurrentUserProcedure:
			authServiceGetCurrentUserHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
