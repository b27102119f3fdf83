package http

import "github.com/sunvolt/solarsite/internal/domain/lead"

type landingData struct {
	CompanyName   string
	Tagline       string
	WhatsAppPhone string
	Year          int
	HasStats      bool
	TotalQuotes   int64
	TotalKw       string
	TopLocations  []lead.LocationCount
}

const landingTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.CompanyName}} - {{.Tagline}}</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        :root {
            --color-primary: #e8750a;
            --color-primary-dark: #c45f05;
            --color-bg: #fffdf8;
            --color-surface: #ffffff;
            --color-text: #22211e;
            --color-text-muted: #6b675f;
            --color-border: #eadfce;
            --color-success: #1d8a4e;
        }

        html {
            font-size: 16px;
            scroll-behavior: smooth;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--color-bg);
            color: var(--color-text);
            line-height: 1.6;
        }

        .container {
            max-width: 1080px;
            margin: 0 auto;
            padding: 0 24px;
        }

        header {
            background: var(--color-surface);
            border-bottom: 1px solid var(--color-border);
            padding: 18px 0;
            position: sticky;
            top: 0;
            z-index: 100;
        }

        .header-inner {
            display: flex;
            justify-content: space-between;
            align-items: center;
        }

        .logo {
            font-size: 22px;
            font-weight: 700;
            color: var(--color-primary);
            text-decoration: none;
        }

        nav {
            display: flex;
            gap: 28px;
        }

        nav a {
            color: var(--color-text-muted);
            text-decoration: none;
            font-weight: 500;
        }

        nav a:hover {
            color: var(--color-primary);
        }

        .hero {
            padding: 88px 0 72px;
            text-align: center;
        }

        .hero h1 {
            font-size: 44px;
            font-weight: 700;
            line-height: 1.2;
            margin-bottom: 20px;
        }

        .hero p {
            font-size: 18px;
            color: var(--color-text-muted);
            max-width: 640px;
            margin: 0 auto 36px;
        }

        .cta-button {
            display: inline-block;
            background: var(--color-primary);
            color: white;
            padding: 15px 44px;
            border-radius: 8px;
            text-decoration: none;
            font-weight: 600;
            font-size: 16px;
            border: none;
            cursor: pointer;
        }

        .cta-button:hover {
            background: var(--color-primary-dark);
        }

        .stats-strip {
            background: var(--color-primary);
            color: white;
            padding: 36px 0;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(180px, 1fr));
            gap: 24px;
            text-align: center;
        }

        .stat-value {
            font-size: 34px;
            font-weight: 700;
        }

        .stat-label {
            font-size: 14px;
            opacity: 0.9;
        }

        .steps {
            padding: 72px 0;
        }

        .section-title {
            font-size: 30px;
            font-weight: 700;
            text-align: center;
            margin-bottom: 44px;
        }

        .steps-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(240px, 1fr));
            gap: 24px;
        }

        .step-card {
            padding: 28px;
            background: var(--color-surface);
            border: 1px solid var(--color-border);
            border-radius: 10px;
        }

        .step-card h3 {
            font-size: 18px;
            margin-bottom: 10px;
        }

        .step-card p {
            color: var(--color-text-muted);
            font-size: 15px;
        }

        .estimator {
            padding: 72px 0;
            background: var(--color-surface);
            border-top: 1px solid var(--color-border);
            border-bottom: 1px solid var(--color-border);
        }

        .estimator-inner {
            max-width: 560px;
            margin: 0 auto;
        }

        .field {
            margin-bottom: 18px;
        }

        .field label {
            display: block;
            font-weight: 600;
            font-size: 14px;
            margin-bottom: 6px;
        }

        .field input, .field select {
            width: 100%;
            padding: 12px 14px;
            font-size: 16px;
            border: 1px solid var(--color-border);
            border-radius: 8px;
            background: var(--color-bg);
        }

        .form-error {
            display: none;
            color: #b3261e;
            font-size: 14px;
            margin-bottom: 14px;
        }

        .results {
            display: none;
            margin-top: 32px;
            padding: 24px;
            border: 1px solid var(--color-border);
            border-radius: 10px;
            background: var(--color-bg);
        }

        .results h3 {
            margin-bottom: 16px;
        }

        .results dl {
            display: grid;
            grid-template-columns: 1fr 1fr;
            gap: 10px 16px;
            margin-bottom: 20px;
        }

        .results dt {
            color: var(--color-text-muted);
            font-size: 14px;
        }

        .results dd {
            font-weight: 600;
            text-align: right;
        }

        .savings-value {
            color: var(--color-success);
        }

        .whatsapp-button {
            display: inline-block;
            background: var(--color-success);
            color: white;
            padding: 13px 32px;
            border-radius: 8px;
            text-decoration: none;
            font-weight: 600;
        }

        .disclaimer {
            padding: 36px 0;
            text-align: center;
        }

        .disclaimer p {
            color: var(--color-text-muted);
            font-size: 13px;
            max-width: 640px;
            margin: 0 auto;
        }

        footer {
            background: var(--color-surface);
            border-top: 1px solid var(--color-border);
            padding: 32px 0;
            text-align: center;
            color: var(--color-text-muted);
            font-size: 14px;
        }

        @media (max-width: 768px) {
            nav {
                display: none;
            }

            .hero h1 {
                font-size: 32px;
            }

            .results dl {
                grid-template-columns: 1fr;
            }

            .results dd {
                text-align: left;
            }
        }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <div class="header-inner">
                <a href="/" class="logo">{{.CompanyName}}</a>
                <nav>
                    <a href="#how-it-works">How it works</a>
                    <a href="#estimate">Estimate</a>
                    <a href="https://wa.me/{{.WhatsAppPhone}}">Contact</a>
                </nav>
            </div>
        </div>
    </header>

    <main>
        <section class="hero">
            <div class="container">
                <h1>{{.Tagline}}</h1>
                <p>Enter your monthly electricity bill or consumption and get the
                recommended rooftop system size, its cost and your monthly savings
                in seconds. No site visit needed for the first estimate.</p>
                <a href="#estimate" class="cta-button">Get my free estimate</a>
            </div>
        </section>

        {{if .HasStats}}
        <section class="stats-strip">
            <div class="container">
                <div class="stats-grid">
                    <div>
                        <div class="stat-value">{{.TotalQuotes}}</div>
                        <div class="stat-label">estimates served</div>
                    </div>
                    <div>
                        <div class="stat-value">{{.TotalKw}} kW</div>
                        <div class="stat-label">capacity sized</div>
                    </div>
                    {{range .TopLocations}}
                    <div>
                        <div class="stat-value">{{.Count}}</div>
                        <div class="stat-label">from {{.Location}}</div>
                    </div>
                    {{end}}
                </div>
            </div>
        </section>
        {{end}}

        <section class="steps" id="how-it-works">
            <div class="container">
                <h2 class="section-title">How it works</h2>
                <div class="steps-grid">
                    <div class="step-card">
                        <h3>1. Tell us your bill</h3>
                        <p>Your monthly bill or your consumption in units is all
                        the calculator needs.</p>
                    </div>
                    <div class="step-card">
                        <h3>2. See your system</h3>
                        <p>We size the rooftop system, estimate its cost and show
                        what it saves every month.</p>
                    </div>
                    <div class="step-card">
                        <h3>3. Chat with us</h3>
                        <p>Happy with the numbers? Send them to our team on
                        WhatsApp and book a free site survey.</p>
                    </div>
                </div>
            </div>
        </section>

        <section class="estimator" id="estimate">
            <div class="container">
                <div class="estimator-inner">
                    <h2 class="section-title">Solar savings calculator</h2>
                    <form id="estimate-form">
                        <div class="field">
                            <label for="mode">I know my monthly</label>
                            <select id="mode" name="mode">
                                <option value="bill">Bill (&#8377;)</option>
                                <option value="units">Consumption (units)</option>
                            </select>
                        </div>
                        <div class="field">
                            <label for="amount">Amount</label>
                            <input type="number" id="amount" name="amount" min="1" step="any" placeholder="e.g. 2500" required>
                        </div>
                        <div class="field">
                            <label for="location">City (optional)</label>
                            <input type="text" id="location" name="location" placeholder="e.g. Jaipur">
                        </div>
                        <div class="form-error" id="form-error"></div>
                        <button type="submit" class="cta-button">Calculate savings</button>
                    </form>

                    <div class="results" id="results">
                        <h3>Your solar estimate</h3>
                        <dl>
                            <dt>Monthly consumption</dt>
                            <dd><span id="result-units"></span> units</dd>
                            <dt>Recommended system</dt>
                            <dd id="result-size"></dd>
                            <dt>Estimated cost</dt>
                            <dd id="result-cost"></dd>
                            <dt>Monthly savings</dt>
                            <dd class="savings-value" id="result-savings"></dd>
                            <dt>Payback period</dt>
                            <dd id="result-payback"></dd>
                        </dl>
                        <a href="#" target="_blank" rel="noopener" class="whatsapp-button" id="result-whatsapp">Send to us on WhatsApp</a>
                    </div>
                </div>
            </div>
        </section>

        <section class="disclaimer">
            <div class="container">
                <p>Estimates are indicative and based on average tariffs and
                generation for grid-connected rooftop systems. Final sizing and
                pricing follow a free site survey by our engineers.</p>
            </div>
        </section>
    </main>

    <footer>
        <div class="container">&copy; {{.Year}} {{.CompanyName}}</div>
    </footer>

    <script>
        (function () {
            var form = document.getElementById('estimate-form');
            var results = document.getElementById('results');
            var formError = document.getElementById('form-error');

            form.addEventListener('submit', function (event) {
                event.preventDefault();
                formError.style.display = 'none';

                var payload = {
                    mode: document.getElementById('mode').value,
                    amount: Number(document.getElementById('amount').value),
                    location: document.getElementById('location').value
                };

                fetch('/api/v1/estimates', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify(payload)
                }).then(function (res) {
                    return res.json().then(function (body) {
                        if (!res.ok) {
                            var message = body && body.error && body.error.message
                                ? body.error.message
                                : 'Could not calculate an estimate. Please try again.';
                            throw new Error(message);
                        }
                        return body;
                    });
                }).then(function (body) {
                    document.getElementById('result-units').textContent = body.monthlyUnits;
                    document.getElementById('result-size').textContent = body.systemSize;
                    document.getElementById('result-cost').textContent = body.costDisplay;
                    document.getElementById('result-savings').textContent = body.savingsDisplay + ' / month';
                    document.getElementById('result-payback').textContent = body.paybackPeriod;
                    document.getElementById('result-whatsapp').href = body.whatsappUrl;
                    results.style.display = 'block';
                    results.scrollIntoView({ behavior: 'smooth', block: 'nearest' });
                }).catch(function (err) {
                    results.style.display = 'none';
                    formError.textContent = err.message;
                    formError.style.display = 'block';
                });
            });
        })();
    </script>
</body>
</html>`
