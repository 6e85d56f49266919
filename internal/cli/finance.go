package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/lifedash/internal/core/domain"
	"github.com/SscSPs/lifedash/internal/dto"
	"github.com/SscSPs/lifedash/internal/utils"
	"github.com/SscSPs/lifedash/internal/utils/accounting"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type summaryCmd struct {
	app *App
}

func (*summaryCmd) Name() string             { return "summary" }
func (*summaryCmd) Synopsis() string         { return "show balances, budget and spending by category" }
func (*summaryCmd) Usage() string            { return "lifedash summary\n" }
func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (p *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	ws := p.app.Workspace
	if err := ws.Initialize(ctx); err != nil {
		return p.app.fail(err)
	}
	sum := ws.Finance.Summary()
	cur := utils.DefaultCurrency
	fmt.Fprintln(p.app.out, box("Summary", [][2]string{
		{"Total balance", signedMoney(sum.TotalBalance, cur)},
		{"Income", utils.FormatMoney(sum.TotalIncome, cur)},
		{"Expenses", utils.FormatMoney(sum.TotalExpense, cur)},
		{"Net budget", signedMoney(sum.NetBudget, cur)},
		{"Fixed monthly", utils.FormatMoney(sum.TotalFixedExpenses, cur)},
		{"Open tasks", fmt.Sprint(openTasks(ws.Tasks.Tasks.Items()))},
	}))

	byCategory := ws.Finance.ExpenseByCategory()
	if len(byCategory) == 0 {
		return subcommands.ExitSuccess
	}
	rows := [][]string{{"CATEGORY", "SPENT"}}
	for _, c := range byCategory {
		rows = append(rows, []string{c.Category, utils.FormatMoney(c.Amount, cur)})
	}
	writeTable(p.app.out, rows)
	return subcommands.ExitSuccess
}

func openTasks(tasks []domain.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Status == domain.Pending || t.Status == domain.InProgress {
			n++
		}
	}
	return n
}

type accountsCmd struct {
	app *App
}

func (*accountsCmd) Name() string             { return "accounts" }
func (*accountsCmd) Synopsis() string         { return "list accounts and balances" }
func (*accountsCmd) Usage() string            { return "lifedash accounts\n" }
func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (p *accountsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	finance := p.app.Workspace.Finance
	if err := finance.FetchAccounts(ctx); err != nil {
		return p.app.fail(err)
	}
	accounts := finance.Accounts.Items()
	if len(accounts) == 0 {
		emptyNote(p.app.out, "accounts")
		return subcommands.ExitSuccess
	}
	rows := [][]string{{"ID", "NAME", "TYPE", "BALANCE"}}
	for _, acc := range accounts {
		kind := string(acc.Type)
		if acc.SubType != "" && acc.SubType != domain.NotAvailable {
			kind += "/" + string(acc.SubType)
		}
		rows = append(rows, []string{fmt.Sprint(acc.ID), acc.Name, kind, signedMoney(acc.Balance, acc.Currency)})
	}
	writeTable(p.app.out, rows)
	fmt.Fprintln(p.app.out, "Total:", signedMoney(finance.TotalBalance(), utils.DefaultCurrency))
	return subcommands.ExitSuccess
}

type addAccountCmd struct {
	app *App
	req dto.AccountRequest
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create an account" }
func (*addAccountCmd) Usage() string {
	return `lifedash add-account -name <name> -type <card|loan|investment|cash|savings> [flags]
`
}

func (p *addAccountCmd) SetFlags(f *flag.FlagSet) {
	p.req = dto.AccountRequest{Currency: utils.DefaultCurrency}
	f.StringVar(&p.req.Name, "name", "", "Account name.")
	f.Var(enumValue[domain.AccountType]{&p.req.Type}, "type", "Account type: card, loan, investment, cash or savings.")
	f.Var(enumValue[domain.AccountSubType]{&p.req.SubType}, "subtype", "Card or cash subtype: debit, credit, payroll.")
	f.Var(decimalValue{&p.req.Balance}, "balance", "Opening balance, negative for debt.")
	f.Var(decimalValue{&p.req.CreditLimit}, "credit-limit", "Credit limit.")
	f.Var(decimalValue{&p.req.InterestRate}, "interest-rate", "Annual interest rate in percent.")
	f.Var(decimalValue{&p.req.MonthlyPayment}, "payment", "Regular payment amount.")
	f.Var(enumValue[domain.PaymentFrequency]{&p.req.PaymentFrequency}, "frequency", "Payment frequency: weekly, biweekly or monthly.")
	f.IntVar(&p.req.CutoffDay, "cutoff-day", 0, "Statement cutoff day of month.")
	f.IntVar(&p.req.PaymentDay, "payment-day", 0, "Payment due day of month.")
	f.StringVar(&p.req.Currency, "currency", utils.DefaultCurrency, "ISO 4217 currency code.")
}

func (p *addAccountCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	p.req.Currency = strings.ToUpper(p.req.Currency)
	if err := p.app.Workspace.Finance.CreateAccount(ctx, p.req); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.out, "Account %q created\n", p.req.Name)
	return subcommands.ExitSuccess
}

type transactionsCmd struct {
	app   *App
	limit int
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "list recent transactions" }
func (*transactionsCmd) Usage() string    { return "lifedash transactions [-n <count>]\n" }

func (p *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.limit, "n", 20, "Show at most this many transactions, 0 for all.")
}

func (p *transactionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	finance := p.app.Workspace.Finance
	if err := firstError(finance.FetchAccounts(ctx), finance.FetchTransactions(ctx)); err != nil {
		return p.app.fail(err)
	}
	txs := finance.Transactions.Items()
	if len(txs) == 0 {
		emptyNote(p.app.out, "transactions")
		return subcommands.ExitSuccess
	}
	if p.limit > 0 && len(txs) > p.limit {
		txs = txs[:p.limit]
	}
	accounts := make(map[int64]domain.Account)
	for _, acc := range finance.Accounts.Items() {
		accounts[acc.ID] = acc
	}
	rows := [][]string{{"DATE", "ACCOUNT", "TYPE", "CATEGORY", "AMOUNT", "DESCRIPTION"}}
	for _, tx := range txs {
		acc := accounts[tx.AccountID]
		name := tx.AccountName
		if name == "" {
			name = acc.Name
		}
		rows = append(rows, []string{
			formatDate(tx.Date), name, string(tx.Type), tx.Category,
			signedMoney(displayAmount(tx), acc.Currency), tx.Description,
		})
	}
	writeTable(p.app.out, rows)
	return subcommands.ExitSuccess
}

// displayAmount shows money leaving the account as negative.
func displayAmount(tx domain.Transaction) decimal.Decimal {
	if tx.Type == domain.Income {
		return tx.Amount
	}
	return tx.Amount.Neg()
}

type addTransactionCmd struct {
	app *App
	req dto.CreateTransactionRequest
}

func (*addTransactionCmd) Name() string     { return "add-tx" }
func (*addTransactionCmd) Synopsis() string { return "record a transaction" }
func (*addTransactionCmd) Usage() string {
	return `lifedash add-tx -account <id> -amount <amount> -category <name> [-type expense] [-date YYYY-MM-DD] [-desc text]
`
}

func (p *addTransactionCmd) SetFlags(f *flag.FlagSet) {
	p.req = dto.CreateTransactionRequest{Type: domain.Expense}
	f.Int64Var(&p.req.AccountID, "account", 0, "Account id.")
	f.Var(enumValue[domain.TransactionType]{&p.req.Type}, "type", "income, expense, investment, credit_payment, loan_payment or transfer.")
	f.Var(decimalValue{&p.req.Amount}, "amount", "Positive amount.")
	f.StringVar(&p.req.Category, "category", "", "Category name.")
	f.StringVar(&p.req.Description, "desc", "", "Free-form description.")
	f.Var(dateValue{&p.req.Date}, "date", "Transaction date, today when omitted.")
	f.Var(optionalInt64{&p.req.SubscriptionID}, "subscription", "Subscription this charge belongs to.")
}

func (p *addTransactionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	finance := p.app.Workspace.Finance
	if p.req.Category != "" && !finance.Categories.Contains(p.req.Category) {
		if near := finance.Categories.Suggest(p.req.Category, 1); len(near) > 0 {
			fmt.Fprintln(p.app.errOut, mutedStyle.Render(fmt.Sprintf("New category %q (closest known: %s)", p.req.Category, near[0])))
		}
	}
	if err := finance.AddTransaction(ctx, p.req); err != nil {
		return p.app.fail(err)
	}
	for _, acc := range finance.Accounts.Items() {
		if acc.ID == p.req.AccountID {
			fmt.Fprintf(p.app.out, "Recorded. %s balance: %s\n", acc.Name, signedMoney(acc.Balance, acc.Currency))
			return subcommands.ExitSuccess
		}
	}
	fmt.Fprintln(p.app.out, "Recorded.")
	return subcommands.ExitSuccess
}

type subscriptionsCmd struct {
	app *App
}

func (*subscriptionsCmd) Name() string             { return "subscriptions" }
func (*subscriptionsCmd) Synopsis() string         { return "list subscriptions and their monthly cost" }
func (*subscriptionsCmd) Usage() string            { return "lifedash subscriptions\n" }
func (*subscriptionsCmd) SetFlags(_ *flag.FlagSet) {}

func (p *subscriptionsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	finance := p.app.Workspace.Finance
	if err := finance.FetchSubscriptions(ctx); err != nil {
		return p.app.fail(err)
	}
	subs := finance.Subscriptions.Items()
	if len(subs) == 0 {
		emptyNote(p.app.out, "subscriptions")
		return subcommands.ExitSuccess
	}
	rows := [][]string{{"ID", "NAME", "KIND", "BILLED", "AMOUNT", "PER MONTH", "NEXT"}}
	for _, s := range subs {
		amount := utils.FormatMoney(s.Amount, s.Currency)
		if s.IsVariable {
			amount = "~" + amount
		}
		next := "-"
		if s.NextPaymentDate != nil {
			next = formatDate(*s.NextPaymentDate)
		}
		rows = append(rows, []string{
			fmt.Sprint(s.ID), s.Name, string(s.Kind), string(s.Frequency), amount,
			utils.FormatMoney(accounting.MonthlyEquivalent(s).Round(2), s.Currency), next,
		})
	}
	writeTable(p.app.out, rows)
	fmt.Fprintln(p.app.out, "Fixed monthly:", utils.FormatMoney(finance.TotalFixedExpenses(), utils.DefaultCurrency))
	return subcommands.ExitSuccess
}

type addSubscriptionCmd struct {
	app  *App
	req  dto.SubscriptionRequest
	next time.Time
}

func (*addSubscriptionCmd) Name() string     { return "add-subscription" }
func (*addSubscriptionCmd) Synopsis() string { return "create a subscription" }
func (*addSubscriptionCmd) Usage() string {
	return `lifedash add-subscription -name <name> -amount <amount> [-frequency monthly|yearly] [-kind service|membership]
`
}

func (p *addSubscriptionCmd) SetFlags(f *flag.FlagSet) {
	p.req = dto.SubscriptionRequest{Currency: utils.DefaultCurrency, Frequency: domain.BilledMonthly, Kind: domain.Service}
	f.StringVar(&p.req.Name, "name", "", "Subscription name.")
	f.Var(decimalValue{&p.req.Amount}, "amount", "Amount per billing period.")
	f.StringVar(&p.req.Currency, "currency", utils.DefaultCurrency, "ISO 4217 currency code.")
	f.Var(enumValue[domain.BillingFrequency]{&p.req.Frequency}, "frequency", "monthly or yearly.")
	f.Var(enumValue[domain.SubscriptionKind]{&p.req.Kind}, "kind", "service or membership.")
	f.BoolVar(&p.req.IsVariable, "variable", false, "The amount changes from charge to charge.")
	f.Var(optionalInt64{&p.req.AccountID}, "account", "Account the charge is paid from.")
	f.Var(dateValue{&p.next}, "next", "Next payment date.")
}

func (p *addSubscriptionCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !p.app.requireSession() {
		return subcommands.ExitFailure
	}
	if !p.next.IsZero() {
		p.req.NextPaymentDate = &p.next
	}
	p.req.Currency = strings.ToUpper(p.req.Currency)
	if err := p.app.Workspace.Finance.CreateSubscription(ctx, p.req); err != nil {
		return p.app.fail(err)
	}
	fmt.Fprintf(p.app.out, "Subscription %q created\n", p.req.Name)
	return subcommands.ExitSuccess
}

type categoriesCmd struct {
	app     *App
	suggest string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list known categories or suggest the closest ones" }
func (*categoriesCmd) Usage() string    { return "lifedash categories [-suggest <name>]\n" }

func (p *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.suggest, "suggest", "", "Print the known categories closest to this name.")
}

func (p *categoriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	finance := p.app.Workspace.Finance
	if p.app.Workspace.Session.IsAuthenticated() {
		if err := finance.FetchTransactions(ctx); err != nil {
			return p.app.fail(err)
		}
	}
	names := finance.Categories.List()
	if p.suggest != "" {
		names = finance.Categories.Suggest(p.suggest, 3)
	}
	for _, name := range names {
		fmt.Fprintln(p.app.out, name)
	}
	return subcommands.ExitSuccess
}

// enumValue is a flag.Value for string-backed enums whose Valid method
// reports membership.
type enumValue[T interface {
	~string
	Valid() bool
}] struct{ p *T }

func (v enumValue[T]) String() string {
	if v.p == nil {
		return ""
	}
	return string(*v.p)
}

func (v enumValue[T]) Set(s string) error {
	e := T(strings.ToLower(s))
	if !e.Valid() {
		return fmt.Errorf("unknown value %q", s)
	}
	*v.p = e
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
