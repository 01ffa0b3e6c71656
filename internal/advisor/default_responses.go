package advisor

// DefaultResponses returns the default ordered topic table.
func DefaultResponses() []TopicResponse {
	return []TopicResponse{
		{
			Topic:    "investment",
			Response: "Great question about investing! Here are some key principles: 1) Start early to benefit from compound interest, 2) Diversify your portfolio across different asset classes, 3) Consider low-cost index funds for beginners, 4) Only invest money you won't need for at least 5 years. Would you like specific advice based on your risk tolerance?",
		},
		{
			Topic:    "budget",
			Response: "Creating a budget is essential for financial health! Try the 50/30/20 rule: 50% for needs (rent, utilities, groceries), 30% for wants (entertainment, dining out), and 20% for savings and debt repayment. Track your expenses for a month to see where your money goes, then adjust accordingly.",
		},
		{
			Topic:    "loan",
			Response: "For loan calculations, the key factors are: principal amount, interest rate, and loan term. For example, a $10,000 loan at 5% annual interest for 5 years would have monthly payments of approximately $188.71. Would you like me to help calculate payments for a specific loan scenario?",
		},
		{
			Topic:    "save",
			Response: "Smart saving strategies include: 1) Pay yourself first - save before spending, 2) Automate transfers to savings, 3) Build an emergency fund of 3-6 months expenses, 4) Take advantage of high-yield savings accounts, 5) Consider cutting unnecessary subscriptions and expenses.",
		},
		{
			Topic:    "debt",
			Response: "For debt management: 1) List all debts with balances and interest rates, 2) Consider the debt snowball (pay minimums, extra to smallest) or avalanche method (extra to highest interest), 3) Avoid taking on new debt, 4) Consider debt consolidation if it lowers your interest rate.",
		},
		{
			Topic:    "retirement",
			Response: "Retirement planning tips: 1) Start as early as possible, 2) Contribute enough to get your employer's 401(k) match, 3) Consider both traditional and Roth IRA options, 4) Aim to save 10-15% of your income, 5) Review and adjust your plan annually.",
		},
	}
}
