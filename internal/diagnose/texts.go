package diagnose

// Insight copy. Phase-2 filtering never inspects these strings; it matches
// on the ProblemState tag carried next to them, so wording can change
// freely without altering behavior.
const (
	insolvencyInsight = "🛑 INSOLVENCY RISK: The business is losing money right now. " +
		"Survival comes before growth: freeze spending and pull cash in."
	treadmillInsight = "🚨 Treadmill of Death: Winning a customer costs more than the deal is worth. " +
		"Every new sale makes the hole deeper."
	offerTrapInsight = "⚠️ Offer Trap: Cold traffic is being asked to buy a high-ticket offer on first contact. " +
		"Strangers don't spend big on strangers."
	undermonetizedInsight = "🦄 Undermonetized Excellence: Margins are healthy but existing customers " +
		"are never asked to buy again. The cheapest revenue is sitting in your customer list."
	pricingParalysisInsight = "⚠️ Pricing Paralysis: Margins are thin and prices haven't moved while demand stagnates. " +
		"The market has not rejected a price you never tested."
	underspendingInsight = "🦄 Underspending Paradox: Returns this strong mean acquisition is underfunded. " +
		"You can afford far more growth than you're buying."

	growthBlockedInsight = "🚧 Growth Blocked: The economics support spending more, but fix the current trap first. " +
		"Scaling now would scale the problem."
	waitToExpandInsight = "⏳ Wait To Expand: Monetize the customers you already have before opening the next front. " +
		"Expansion multiplies whatever you feed it."
)

// Action copy.
const (
	actionCollectDebtors = "1. IMMEDIATE: Call your top 5 debtors and demand payment this week."
	actionFreezeSpend    = "2. CUT: Freeze all non-essential software and subscriptions today."

	actionPauseAds    = "1. STOP ADS: Pause paid campaigns until unit economics recover."
	actionRaisePrices = "2. PRICING: Increase prices by 15% to cover acquisition costs."

	actionSplitOffer      = "1. SPLIT: Break the offer into a low-ticket entry product cold traffic can say yes to."
	actionNurtureSequence = "2. NURTURE: Add a follow-up sequence between first contact and the big ask."

	actionUpsellScript = "1. SCRIPT: Write a one-line upsell script for the point of sale."
	actionPremiumTier  = "2. BUNDLE: Package your best work into a premium tier."
	actionRepeatOffer  = "3. FOLLOW-UP: Contact your last 20 customers with a repeat offer."

	actionRaiseCorePrice = "1. PRICING: Raise the core offer price by 10-15%."
	actionQuoteNewPrice  = "2. TEST: Quote the new price to the next 5 prospects before deciding anything."

	actionScaleBudget = "1. SCALE: Double the acquisition budget and re-measure CAC weekly."
)

// Generic fallback plan when no problem state is active. The first item is
// personalized with the profile display name.
const (
	fallbackReviewPLFormat = "1. OPTIMIZE: High five, %s. Fundamentals look sound. Review your P&L line by line for leverage."
	fallbackReactivate     = "2. REACTIVATE: Reach out to past customers with a fresh offer."
)
