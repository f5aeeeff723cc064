package catalog

import "github.com/vantagics/bizlens/pkg/models/domain"

// Domain ids. DomainGeneral is the total-failure fallback and must stay
// registered.
const (
	DomainHR              = "hr"
	DomainEcommerce       = "ecommerce"
	DomainManufacturing   = "manufacturing"
	DomainCustomerService = "customer_service"
	DomainSales           = "sales"
	DomainMarketing       = "marketing"
	DomainFinance         = "finance"
	DomainGeneral         = "general"
)

// defaultProfiles declares the built-in domain catalog. Keyword lists carry
// Vietnamese aliases alongside English ones because uploads routinely mix
// both. Benchmarks come from published industry reference values; a
// zero benchmark means "no reference" and yields StatusUnknown.
func defaultProfiles() []*domain.DomainProfile {
	return []*domain.DomainProfile{
		{
			ID:   DomainHR,
			Name: "Human Resources",
			Keywords: []string{
				"employee", "salary", "attrition", "tenure", "headcount",
				"department", "hire", "recruit", "turnover", "hr",
				"nhan vien", "luong", "nhan su",
			},
			ColumnFragments: []string{"employee", "salary", "department", "tenure", "hire_date", "luong"},
			ExpertRole:      "HR Analytics Director",
			ReasoningTemplate: "Column names and description match workforce data " +
				"(%s), so the dataset is analyzed with HR benchmarks.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Average Salary",
					ColumnFragments: []string{"salary", "luong", "compensation", "base_pay", "wage"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       55000,
					Direction:       domain.HigherIsBetter,
					Unit:            "USD",
				},
				{
					Name:            "Attrition Rate",
					ColumnFragments: []string{"attrition", "left", "resigned", "terminated"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       15,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Average Tenure",
					ColumnFragments: []string{"tenure", "years_at_company", "service_years"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       3.0,
					Direction:       domain.HigherIsBetter,
					Unit:            "years",
				},
				{
					Name:            "Training Hours",
					ColumnFragments: []string{"training_hours", "training", "dao_tao"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       20,
					Direction:       domain.HigherIsBetter,
					Unit:            "hours",
				},
				{
					Name:            "Overtime Rate",
					ColumnFragments: []string{"overtime", "tang_ca"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       10,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "department",
					ColumnFragments: []string{"department", "division", "team", "phong_ban"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "headcount_salary",
						ColumnFragments: []string{"salary", "luong", "compensation"},
						Aggregation:     domain.AggregationMean,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "attrition_rate",
							ColumnFragments: []string{"attrition", "left", "resigned"},
							Aggregation:     domain.AggregationRate,
						},
					},
				},
			},
		},
		{
			ID:   DomainEcommerce,
			Name: "E-commerce",
			Keywords: []string{
				"order", "cart", "checkout", "customer", "sku", "product",
				"shipping", "conversion", "revenue", "refund", "ecommerce",
				"don hang", "doanh thu", "khach hang",
			},
			ColumnFragments: []string{"order", "product", "quantity", "price", "cart", "sku"},
			ExpertRole:      "E-commerce Growth Lead",
			ReasoningTemplate: "Order/cart/product signals (%s) identify this as " +
				"online-retail transaction data.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Average Order Value",
					ColumnFragments: []string{"order_value", "order_total", "amount", "total", "gia_tri"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       85,
					Direction:       domain.HigherIsBetter,
					Unit:            "USD",
				},
				{
					Name:            "Conversion Rate",
					ColumnFragments: []string{"converted", "purchased", "conversion"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       2.5,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Cart Abandonment Rate",
					ColumnFragments: []string{"abandoned", "cart_abandon"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       70,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Return Rate",
					ColumnFragments: []string{"returned", "refund", "hoan_tra"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       8,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Total Revenue",
					ColumnFragments: []string{"revenue", "doanh_thu", "amount", "total"},
					Aggregation:     domain.AggregationSum,
					Benchmark:       100000,
					Direction:       domain.HigherIsBetter,
					Unit:            "USD",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "category",
					ColumnFragments: []string{"category", "product_type", "danh_muc"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "revenue",
						ColumnFragments: []string{"revenue", "doanh_thu", "amount", "total"},
						Aggregation:     domain.AggregationSum,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "return_rate",
							ColumnFragments: []string{"returned", "refund"},
							Aggregation:     domain.AggregationRate,
						},
					},
				},
				{
					Name:            "region",
					ColumnFragments: []string{"region", "province", "city", "khu_vuc"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "revenue",
						ColumnFragments: []string{"revenue", "doanh_thu", "amount", "total"},
						Aggregation:     domain.AggregationSum,
					},
				},
			},
		},
		{
			ID:   DomainManufacturing,
			Name: "Manufacturing",
			Keywords: []string{
				"defect", "production", "line", "shift", "machine", "downtime",
				"output", "batch", "quality", "oee", "san xuat", "loi",
			},
			ColumnFragments: []string{"defect", "line", "shift", "output", "downtime", "machine"},
			ExpertRole:      "Plant Operations Manager",
			ReasoningTemplate: "Production-floor signals (%s) identify this as " +
				"manufacturing quality/throughput data.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Defect Rate",
					ColumnFragments: []string{"defect", "reject", "failed_qc", "loi"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       2.0,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Overall Equipment Effectiveness",
					ColumnFragments: []string{"oee", "effectiveness", "efficiency"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       85,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Downtime Hours",
					ColumnFragments: []string{"downtime", "stoppage"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       4,
					Direction:       domain.LowerIsBetter,
					Unit:            "hours",
				},
				{
					Name:            "Output per Shift",
					ColumnFragments: []string{"output", "units_produced", "san_luong"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       500,
					Direction:       domain.HigherIsBetter,
					Unit:            "units",
				},
				{
					Name:            "On-Time Delivery Rate",
					ColumnFragments: []string{"on_time", "ontime", "delivered_on_time"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       95,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "production_line",
					ColumnFragments: []string{"line", "plant", "machine", "day_chuyen"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "output",
						ColumnFragments: []string{"output", "units_produced", "san_luong"},
						Aggregation:     domain.AggregationSum,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "defect_rate",
							ColumnFragments: []string{"defect", "reject", "loi"},
							Aggregation:     domain.AggregationRate,
						},
					},
				},
			},
		},
		{
			ID:   DomainCustomerService,
			Name: "Customer Service",
			Keywords: []string{
				"ticket", "agent", "resolution", "sla", "csat", "handle",
				"escalation", "support", "contact", "reopen",
				"cham soc", "ho tro",
			},
			ColumnFragments: []string{"ticket", "agent", "resolved", "sla", "csat", "handle_time"},
			ExpertRole:      "Customer Experience Director",
			ReasoningTemplate: "Ticket/agent/SLA signals (%s) identify this as " +
				"support-desk operational data.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "First Contact Resolution",
					ColumnFragments: []string{"first_contact", "fcr", "resolved_first"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       74,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "SLA Compliance",
					ColumnFragments: []string{"sla_met", "sla", "within_sla"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       90,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Average Handle Time",
					ColumnFragments: []string{"handle_time", "aht", "duration_minutes"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       6.0,
					Direction:       domain.LowerIsBetter,
					Unit:            "minutes",
				},
				{
					Name:            "Customer Satisfaction",
					ColumnFragments: []string{"csat", "satisfaction", "rating"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       4.0,
					Direction:       domain.HigherIsBetter,
					Unit:            "/5",
				},
				{
					Name:            "Reopen Rate",
					ColumnFragments: []string{"reopen", "reopened"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       5,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "support_channel",
					ColumnFragments: []string{"channel", "contact_type", "kenh"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "csat",
						ColumnFragments: []string{"csat", "satisfaction", "rating"},
						Aggregation:     domain.AggregationMean,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "sla_compliance",
							ColumnFragments: []string{"sla_met", "sla", "within_sla"},
							Aggregation:     domain.AggregationRate,
						},
						{
							Name:            "handle_time",
							ColumnFragments: []string{"handle_time", "aht", "duration_minutes"},
							Aggregation:     domain.AggregationMean,
						},
					},
				},
			},
		},
		{
			ID:   DomainSales,
			Name: "Sales",
			Keywords: []string{
				"deal", "pipeline", "quota", "won", "lead", "opportunity",
				"close", "rep", "forecast", "ban hang", "hop dong",
			},
			ColumnFragments: []string{"deal", "stage", "quota", "rep", "won", "pipeline"},
			ExpertRole:      "VP of Sales Operations",
			ReasoningTemplate: "Deal/pipeline/quota signals (%s) identify this as " +
				"sales performance data.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Win Rate",
					ColumnFragments: []string{"won", "closed_won", "is_won"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       21,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Average Deal Size",
					ColumnFragments: []string{"deal_size", "deal_value", "contract_value", "amount"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       50000,
					Direction:       domain.HigherIsBetter,
					Unit:            "USD",
				},
				{
					Name:            "Sales Cycle Length",
					ColumnFragments: []string{"cycle_days", "days_to_close", "cycle"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       45,
					Direction:       domain.LowerIsBetter,
					Unit:            "days",
				},
				{
					Name:            "Quota Attainment",
					ColumnFragments: []string{"quota_attainment", "attainment", "quota_pct"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       80,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Pipeline Value",
					ColumnFragments: []string{"pipeline_value", "pipeline", "opportunity_value"},
					Aggregation:     domain.AggregationSum,
					Benchmark:       500000,
					Direction:       domain.HigherIsBetter,
					Unit:            "USD",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "region",
					ColumnFragments: []string{"region", "territory", "area", "khu_vuc"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "deal_value",
						ColumnFragments: []string{"deal_size", "deal_value", "contract_value", "amount"},
						Aggregation:     domain.AggregationSum,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "win_rate",
							ColumnFragments: []string{"won", "closed_won", "is_won"},
							Aggregation:     domain.AggregationRate,
						},
					},
				},
			},
		},
		{
			ID:   DomainMarketing,
			Name: "Marketing",
			Keywords: []string{
				"campaign", "channel", "impression", "click", "ctr", "cpa",
				"spend", "roas", "ad", "acquisition", "quang cao", "chien dich",
			},
			ColumnFragments: []string{"campaign", "channel", "clicks", "impressions", "spend", "cpa"},
			ExpertRole:      "Head of Performance Marketing",
			ReasoningTemplate: "Campaign/channel/spend signals (%s) identify this as " +
				"marketing performance data.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Conversion Rate",
					ColumnFragments: []string{"converted", "conversion"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       3.0,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Cost per Acquisition",
					ColumnFragments: []string{"cpa", "cost_per_acquisition", "acquisition_cost"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       45,
					Direction:       domain.LowerIsBetter,
					Unit:            "USD",
				},
				{
					Name:            "Click-Through Rate",
					ColumnFragments: []string{"ctr", "click_rate"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       2.0,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Return on Ad Spend",
					ColumnFragments: []string{"roas", "return_on_ad"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       4.0,
					Direction:       domain.HigherIsBetter,
					Unit:            "x",
				},
				{
					Name:            "Total Spend",
					ColumnFragments: []string{"spend", "budget", "cost", "chi_phi"},
					Aggregation:     domain.AggregationSum,
					Benchmark:       50000,
					Direction:       domain.LowerIsBetter,
					Unit:            "USD",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "channel",
					ColumnFragments: []string{"channel", "source", "platform", "kenh"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "revenue",
						ColumnFragments: []string{"revenue", "doanh_thu", "conversion_value"},
						Aggregation:     domain.AggregationSum,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "cpa",
							ColumnFragments: []string{"cpa", "cost_per_acquisition", "acquisition_cost"},
							Aggregation:     domain.AggregationMean,
						},
						{
							Name:            "conversion_rate",
							ColumnFragments: []string{"converted", "conversion"},
							Aggregation:     domain.AggregationRate,
						},
					},
				},
			},
		},
		{
			ID:   DomainFinance,
			Name: "Finance",
			Keywords: []string{
				"expense", "profit", "margin", "invoice", "receivable",
				"budget", "cash", "ledger", "tai chinh", "loi nhuan",
			},
			ColumnFragments: []string{"expense", "profit", "margin", "invoice", "receivable"},
			ExpertRole:      "Financial Controller",
			ReasoningTemplate: "Ledger/margin/invoice signals (%s) identify this as " +
				"financial data.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Gross Margin",
					ColumnFragments: []string{"margin", "gross_margin"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       40,
					Direction:       domain.HigherIsBetter,
					Unit:            "%",
				},
				{
					Name:            "Net Profit",
					ColumnFragments: []string{"profit", "net_income", "loi_nhuan"},
					Aggregation:     domain.AggregationSum,
					Benchmark:       100000,
					Direction:       domain.HigherIsBetter,
					Unit:            "USD",
				},
				{
					Name:            "Operating Expense",
					ColumnFragments: []string{"expense", "opex", "chi_phi"},
					Aggregation:     domain.AggregationSum,
					Benchmark:       200000,
					Direction:       domain.LowerIsBetter,
					Unit:            "USD",
				},
				{
					Name:            "Days Sales Outstanding",
					ColumnFragments: []string{"dso", "receivable_days", "days_outstanding"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       45,
					Direction:       domain.LowerIsBetter,
					Unit:            "days",
				},
				{
					Name:            "Overdue Invoice Rate",
					ColumnFragments: []string{"overdue", "past_due"},
					Aggregation:     domain.AggregationRate,
					Benchmark:       12,
					Direction:       domain.LowerIsBetter,
					Unit:            "%",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "business_unit",
					ColumnFragments: []string{"unit", "department", "cost_center", "don_vi"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "profit",
						ColumnFragments: []string{"profit", "net_income", "loi_nhuan"},
						Aggregation:     domain.AggregationSum,
					},
					SecondaryMetrics: []domain.MetricSpec{
						{
							Name:            "expense",
							ColumnFragments: []string{"expense", "opex", "chi_phi"},
							Aggregation:     domain.AggregationSum,
						},
					},
				},
			},
		},
		{
			ID:              DomainGeneral,
			Name:            "General Business",
			Keywords:        []string{},
			ColumnFragments: []string{},
			ExpertRole:      "Business Analyst",
			ReasoningTemplate: "No domain profile matched the columns or description " +
				"(%s); generic business benchmarks apply.",
			KPIs: []domain.KPIDefinition{
				{
					Name:            "Average Value",
					ColumnFragments: []string{"value", "amount", "total", "price", "score"},
					Aggregation:     domain.AggregationMean,
					Benchmark:       0,
					Direction:       domain.HigherIsBetter,
					Unit:            "",
				},
				{
					Name:            "Total Value",
					ColumnFragments: []string{"value", "amount", "total", "price"},
					Aggregation:     domain.AggregationSum,
					Benchmark:       0,
					Direction:       domain.HigherIsBetter,
					Unit:            "",
				},
			},
			Dimensions: []domain.DimensionSpec{
				{
					Name:            "category",
					ColumnFragments: []string{"category", "group", "type", "segment", "region"},
					PrimaryMetric: domain.MetricSpec{
						Name:            "value",
						ColumnFragments: []string{"value", "amount", "total", "price", "score"},
						Aggregation:     domain.AggregationSum,
					},
				},
			},
		},
	}
}
