package handlers

const baseStyles = `
    body { font-family: -apple-system, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; background: #f3f4f6; color: #111827; margin: 0; }
    .container { max-width: 640px; margin: 0 auto; padding: 32px 16px; }
    .card { background: #fff; border-radius: 8px; box-shadow: 0 1px 3px rgba(0,0,0,0.1); overflow: hidden; }
    .card-body { padding: 24px; }
    h1 { font-size: 28px; text-align: center; }
    h3 { font-size: 16px; margin: 16px 0 8px; }
    label { display: block; font-size: 14px; color: #374151; margin: 12px 0 4px; }
    input, select { width: 100%; box-sizing: border-box; padding: 8px 10px; border: 1px solid #d1d5db; border-radius: 6px; font-size: 14px; }
    .error-message { color: #dc2626; font-size: 13px; margin: 4px 0 0; }
    .banner { background: #fee2e2; border: 1px solid #fca5a5; color: #991b1b; border-radius: 6px; padding: 12px; margin-bottom: 16px; }
    .btn { display: inline-block; width: 100%; box-sizing: border-box; text-align: center; background: #2563eb; color: #fff; border: none; border-radius: 6px; padding: 10px 16px; font-size: 15px; cursor: pointer; text-decoration: none; }
    .btn:disabled { opacity: 0.6; cursor: not-allowed; }
    .btn-secondary { background: #6b7280; }
    .status-band { padding: 16px; color: #fff; text-align: center; font-weight: 600; }
    .status-green { background: #22c55e; }
    .status-red { background: #ef4444; }
    .status-yellow { background: #eab308; }
    .row { display: flex; justify-content: space-between; padding: 8px 0; border-top: 1px solid #f3f4f6; font-size: 14px; }
    .row span:first-child { color: #6b7280; }
    .alert { border-radius: 6px; padding: 12px; margin-top: 16px; font-size: 14px; }
    .alert-success { background: #dcfce7; border: 1px solid #86efac; color: #166534; }
    .alert-error { background: #fee2e2; border: 1px solid #fca5a5; color: #991b1b; }
    .alert-warning { background: #fef9c3; border: 1px solid #fde047; color: #854d0e; }
    .actions { margin-top: 24px; text-align: center; }
    .actions a { margin: 0 6px; width: auto; padding: 10px 24px; }
    .footnote { text-align: center; font-size: 13px; color: #6b7280; margin-top: 16px; }
`

const paymentFormTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Checkout</title>
    <style>` + baseStyles + `</style>
</head>
<body>
<div class="container">
    <h1>Secure Checkout</h1>
    <div class="card"><div class="card-body">
        {{if .Banner}}<div class="banner">{{.Banner}}</div>{{end}}
        <form method="POST" action="/" id="payment-form">
            <h3>Customer Information</h3>
            <label for="customer_name">Full Name</label>
            <input type="text" id="customer_name" name="customer_name" placeholder="John Doe" value="{{.Values.CustomerName}}">
            {{with .Errors.customer_name}}<p class="error-message">{{.}}</p>{{end}}

            <label for="customer_email">Email Address</label>
            <input type="email" id="customer_email" name="customer_email" placeholder="john@example.com" value="{{.Values.CustomerEmail}}">
            {{with .Errors.customer_email}}<p class="error-message">{{.}}</p>{{end}}

            <h3>Payment Details</h3>
            <label for="amount">Amount</label>
            <input type="number" id="amount" name="amount" placeholder="99.99" step="0.01" value="{{.Values.Amount}}">
            {{with .Errors.amount}}<p class="error-message">{{.}}</p>{{end}}

            <label for="currency">Currency</label>
            <select id="currency" name="currency">
                {{range .Currencies}}<option value="{{.}}"{{if eq . $.Values.Currency}} selected{{end}}>{{.}}</option>
                {{end}}
            </select>
            {{with .Errors.currency}}<p class="error-message">{{.}}</p>{{end}}

            <h3>Card Information</h3>
            <label for="card_number">Card Number</label>
            <input type="text" id="card_number" name="card_number" placeholder="4524212222222646" maxlength="16" value="{{.Values.CardNumber}}">
            {{with index .Errors "card_info.card_number"}}<p class="error-message">{{.}}</p>{{end}}

            <label for="card_holder_name">Card Holder Name</label>
            <input type="text" id="card_holder_name" name="card_holder_name" placeholder="John Doe" value="{{.Values.CardHolderName}}">
            {{with index .Errors "card_info.card_holder_name"}}<p class="error-message">{{.}}</p>{{end}}

            <label for="card_expiry_month">Month</label>
            <input type="text" id="card_expiry_month" name="card_expiry_month" placeholder="MM" maxlength="2" value="{{.Values.CardExpiryMonth}}">
            {{with index .Errors "card_info.card_expiry_month"}}<p class="error-message">{{.}}</p>{{end}}

            <label for="card_expiry_year">Year</label>
            <input type="text" id="card_expiry_year" name="card_expiry_year" placeholder="YY" maxlength="2" value="{{.Values.CardExpiryYear}}">
            {{with index .Errors "card_info.card_expiry_year"}}<p class="error-message">{{.}}</p>{{end}}

            <label for="card_cvv">CVV</label>
            <input type="password" id="card_cvv" name="card_cvv" placeholder="***" maxlength="4" value="{{.Values.CardCVV}}">
            {{with index .Errors "card_info.card_cvv"}}<p class="error-message">{{.}}</p>{{end}}

            <div style="padding-top: 16px;">
                <button type="submit" class="btn" id="submit-btn">Pay Now</button>
            </div>
        </form>
        <p class="footnote">Your payment information is secured with industry-standard encryption</p>
    </div></div>
</div>
<script>
    document.getElementById('payment-form').addEventListener('submit', function () {
        var btn = document.getElementById('submit-btn');
        btn.disabled = true;
        btn.textContent = 'Processing...';
    });
</script>
</body>
</html>`

const confirmationTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Payment Confirmation</title>
    <style>` + baseStyles + `</style>
</head>
<body>
<div class="container">
    <div class="card">
        <div class="status-band status-{{.Display.Color}}">{{.Display.Label}}</div>
        <div class="card-body">
            <h3>Transaction Details</h3>
            <div class="row"><span>Transaction ID:</span><span>{{.Transaction.ID}}</span></div>
            <div class="row"><span>Amount:</span><span>{{.FormattedAmount}}</span></div>
            <div class="row"><span>Status:</span><span>{{.Transaction.Status}}</span></div>
            <div class="row"><span>Date:</span><span>{{.FormattedDate}}</span></div>

            <h3>Customer Information</h3>
            <div class="row"><span>Name:</span><span>{{.Transaction.CustomerName}}</span></div>
            <div class="row"><span>Email:</span><span>{{.Transaction.CustomerEmail}}</span></div>

            {{if .Succeeded}}
            <div class="alert alert-success">Your payment has been processed successfully. A confirmation email has been sent to your email address.</div>
            {{else if .Failed}}
            <div class="alert alert-error">Your payment could not be processed. Please try again or contact customer support for assistance.</div>
            {{else}}
            <div class="alert alert-warning">Your payment is being processed. We'll update you once the payment is confirmed.</div>
            {{end}}

            <div class="actions">
                <a class="btn" href="/">Return to Home</a>
                {{if not .Succeeded}}<a class="btn btn-secondary" href="/">Try Again</a>{{end}}
            </div>
        </div>
    </div>
</div>
</body>
</html>`

const confirmationErrorTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Error</title>
    <style>` + baseStyles + `</style>
</head>
<body>
<div class="container">
    <div class="alert alert-error">{{.Message}}</div>
    <div class="actions">
        <a class="btn" href="/">Return to Payment Page</a>
    </div>
</div>
</body>
</html>`
