package knowledge

// Default returns the ReadyReserve AI website corpus. Built fresh on each
// call so callers own their copy; in practice it is constructed once in main
// and injected everywhere.
func Default() *Base {
	return &Base{
		Company: CompanyInfo{
			Name:        "ReadyReserve AI",
			Tagline:     "Your growth partner for AI-driven digital transformation",
			Description: "ReadyReserve brings AI power to medium-sized businesses—fast, flexible, and customized. We integrate with leading AI platforms to automate your workflows.",
			URL:         "https://readyreserve.ai",
			Founded:     "2024",
			Mission:     "To democratize AI automation for businesses of all sizes",
		},
		Categories: []ServiceCategory{
			{
				Key:         "customer_engagement",
				Name:        "Customer Engagement",
				Description: "Enhance customer interactions with AI-powered solutions",
				Services: []Service{
					{
						Name:        "AI Chatbots",
						Description: "24/7 customer support with intelligent AI responses and natural language understanding",
						Features:    []string{"Instant Responses", "Natural Conversations", "Multi-Channel Support", "Context Awareness"},
						UseCases:    []string{"Customer Support", "Lead Qualification", "FAQ Automation", "Order Assistance"},
					},
					{
						Name:        "Lead Qualification",
						Description: "Automatically identify and score high-value prospects using AI analysis",
						Features:    []string{"AI Scoring", "Behavior Analysis", "CRM Integration", "Real-time Insights"},
						UseCases:    []string{"Sales Pipeline", "Marketing Automation", "Customer Segmentation", "Conversion Optimization"},
					},
					{
						Name:        "WhatsApp/SMS Automation",
						Description: "Instant communication and engagement through messaging platforms",
						Features:    []string{"Multi-Platform Support", "Automated Responses", "Rich Media", "Analytics"},
						UseCases:    []string{"Customer Support", "Marketing Campaigns", "Appointment Reminders", "Order Updates"},
					},
				},
			},
			{
				Key:         "marketing_sales",
				Name:        "Marketing & Sales",
				Description: "AI-powered marketing and sales automation solutions",
				Services: []Service{
					{
						Name:        "AI Social Media Posting",
						Description: "Automated content creation and posting across all social platforms",
						Features:    []string{"Multi-Platform", "AI Content Suggestions", "Optimal Timing", "Analytics"},
						UseCases:    []string{"Brand Awareness", "Lead Generation", "Customer Engagement", "Content Marketing"},
					},
					{
						Name:        "Campaign Optimization",
						Description: "AI-driven insights to improve marketing campaign performance",
						Features:    []string{"A/B Testing", "Performance Analytics", "Audience Insights", "ROI Tracking"},
						UseCases:    []string{"Email Marketing", "Social Media", "PPC Campaigns", "Content Strategy"},
					},
					{
						Name:        "CRM Integration",
						Description: "Seamless workflow integration with your existing CRM systems",
						Features:    []string{"Data Synchronization", "Automated Updates", "Lead Scoring", "Pipeline Management"},
						UseCases:    []string{"Sales Automation", "Customer Management", "Lead Tracking", "Reporting"},
					},
				},
			},
			{
				Key:         "operations",
				Name:        "Operations",
				Description: "Streamline business operations with intelligent automation",
				Services: []Service{
					{
						Name:        "Appointment Scheduling",
						Description: "Automated scheduling system with intelligent conflict resolution",
						Features:    []string{"Calendar Integration", "Conflict Detection", "Reminder System", "Multi-Timezone"},
						UseCases:    []string{"Service Booking", "Meeting Scheduling", "Resource Management", "Customer Appointments"},
					},
					{
						Name:        "Document Automation",
						Description: "AI-powered document processing, generation, and management",
						Features:    []string{"AI Extraction", "Template Generation", "Workflow Integration", "Version Control"},
						UseCases:    []string{"Contract Generation", "Invoice Processing", "Report Creation", "Compliance Documentation"},
					},
					{
						Name:        "Workflow Approvals",
						Description: "Automated approval processes to speed up business operations",
						Features:    []string{"Multi-Level Approvals", "Conditional Logic", "Notification System", "Audit Trail"},
						UseCases:    []string{"Purchase Orders", "Expense Approvals", "Content Publishing", "HR Processes"},
					},
				},
			},
			{
				Key:         "data_insights",
				Name:        "Data & Insights",
				Description: "Transform data into actionable business insights",
				Services: []Service{
					{
						Name:        "Analytics Dashboards",
						Description: "Real-time business analytics with AI-powered insights",
						Features:    []string{"Real-time Metrics", "Custom Dashboards", "AI Insights", "Interactive Visualizations"},
						UseCases:    []string{"Performance Monitoring", "KPI Tracking", "Business Intelligence", "Decision Making"},
					},
					{
						Name:        "Automated Reports",
						Description: "AI-generated reports with insights and recommendations",
						Features:    []string{"Scheduled Reports", "Custom Templates", "AI Analysis", "Multi-Format Export"},
						UseCases:    []string{"Monthly Reports", "Performance Analysis", "Compliance Reporting", "Executive Summaries"},
					},
					{
						Name:        "Predictive Forecasting",
						Description: "AI-powered forecasting for business planning and strategy",
						Features:    []string{"Trend Analysis", "Seasonal Adjustments", "Confidence Intervals", "Scenario Planning"},
						UseCases:    []string{"Sales Forecasting", "Demand Planning", "Budget Planning", "Risk Assessment"},
					},
				},
			},
			{
				Key:         "compliance_security",
				Name:        "Compliance & Security",
				Description: "Ensure compliance and security with AI monitoring",
				Services: []Service{
					{
						Name:        "GDPR Data Compliance",
						Description: "Automated monitoring and compliance with GDPR regulations",
						Features:    []string{"Data Mapping", "Consent Management", "Breach Detection", "Compliance Reporting"},
						UseCases:    []string{"Data Protection", "Privacy Compliance", "Audit Preparation", "Risk Management"},
					},
					{
						Name:        "HIPAA Alerts",
						Description: "Healthcare-specific compliance monitoring and alerting",
						Features:    []string{"PHI Protection", "Access Monitoring", "Audit Logging", "Incident Response"},
						UseCases:    []string{"Healthcare Compliance", "Patient Data Protection", "Audit Trails", "Risk Mitigation"},
					},
					{
						Name:        "Security Monitoring",
						Description: "24/7 security monitoring with AI threat detection",
						Features:    []string{"Threat Detection", "Anomaly Detection", "Real-time Alerts", "Incident Response"},
						UseCases:    []string{"Cybersecurity", "Fraud Detection", "Access Control", "Compliance Monitoring"},
					},
				},
			},
		},
		HowItWorks: []Step{
			{
				Title:       "Choose an Automation Category",
				Description: "Select from our 5 main categories: Customer Engagement, Marketing & Sales, Operations, Data & Insights, or Compliance & Security",
				Details:     "Each category contains multiple specialized automations designed for specific business needs",
			},
			{
				Title:       "Connect Workflow to Your Business Tools",
				Description: "Integrate with your existing tools via n8n workflow automation",
				Details:     "We support 200+ integrations including CRM, email, social media, and productivity tools",
			},
			{
				Title:       "Customize with ReadyReserve AI Consulting",
				Description: "Get personalized setup and optimization with our AI experts",
				Details:     "Our team provides training, customization, and ongoing support to ensure maximum ROI",
			},
		},
		Integrations: Integrations{
			AIPlatforms: []string{
				"OpenAI GPT models",
				"Microsoft Azure AI",
				"Google AI Services",
				"Anthropic Claude",
			},
			WorkflowTools: []string{
				"n8n (Primary workflow engine)",
				"Zapier",
				"Microsoft Power Automate",
				"IFTTT",
			},
			BusinessTools: []string{
				"Salesforce CRM",
				"HubSpot",
				"Mailchimp",
				"Slack",
				"Microsoft Teams",
				"Google Workspace",
				"Microsoft 365",
			},
		},
		Pricing: []PricingPlan{
			{
				Key:         "starter",
				Name:        "Starter",
				Price:       "$99/month",
				Description: "Perfect for small businesses getting started with AI automation",
				Features: []string{
					"Up to 5 automations",
					"Basic AI chatbot",
					"Email support",
					"Standard integrations",
				},
			},
			{
				Key:         "professional",
				Name:        "Professional",
				Price:       "$299/month",
				Description: "Ideal for growing businesses with advanced automation needs",
				Features: []string{
					"Up to 20 automations",
					"Advanced AI features",
					"Priority support",
					"Custom integrations",
					"Analytics dashboard",
				},
			},
			{
				Key:         "enterprise",
				Name:        "Enterprise",
				Price:       "Custom",
				Description: "Tailored solutions for large organizations",
				Features: []string{
					"Unlimited automations",
					"Custom AI models",
					"Dedicated support",
					"White-label options",
					"Advanced security",
					"Custom development",
				},
			},
		},
		FAQ: []FAQCategory{
			{
				Category: "General",
				Entries: []FAQEntry{
					{
						Question: "What is ReadyReserve AI?",
						Answer:   "ReadyReserve AI is your growth partner for AI-driven digital transformation. We bring AI power to medium-sized businesses through fast, flexible, and customized automation solutions. We integrate with leading AI platforms like OpenAI, Microsoft Azure AI, and Google AI Services to automate your workflows.",
					},
					{
						Question: "How does ReadyReserve AI work?",
						Answer:   "Our process is simple: 1) Choose an automation category from our 5 main areas (Customer Engagement, Marketing & Sales, Operations, Data & Insights, or Compliance & Security), 2) Connect your workflow to your business tools via n8n, and 3) Customize with our AI consulting team for optimal results.",
					},
					{
						Question: "What types of businesses can benefit from ReadyReserve AI?",
						Answer:   "ReadyReserve AI is designed for medium-sized businesses across all industries. Whether you're in retail, healthcare, finance, manufacturing, or services, our AI automation solutions can be customized to meet your specific needs and industry requirements.",
					},
					{
						Question: "Do I need technical expertise to use ReadyReserve AI?",
						Answer:   "No technical expertise required! Our platform is designed to be user-friendly, and our AI consulting team provides full setup, training, and ongoing support. We handle the technical complexity so you can focus on growing your business.",
					},
				},
			},
			{
				Category: "Services",
				Entries: []FAQEntry{
					{
						Question: "What automation categories do you offer?",
						Answer:   "We offer 5 main categories: 1) Customer Engagement (AI chatbots, lead qualification, WhatsApp/SMS automation), 2) Marketing & Sales (social media posting, campaign optimization, CRM integration), 3) Operations (appointment scheduling, document automation, workflow approvals), 4) Data & Insights (analytics dashboards, automated reports, predictive forecasting), and 5) Compliance & Security (GDPR compliance, HIPAA alerts, security monitoring).",
					},
					{
						Question: "Can I customize the AI automations for my business?",
						Answer:   "Absolutely! Every automation can be customized to fit your specific business needs. Our AI consulting team works with you to tailor the solutions, integrate with your existing tools, and optimize performance for maximum ROI.",
					},
					{
						Question: "What AI platforms do you integrate with?",
						Answer:   "We integrate with leading AI platforms including OpenAI GPT models, Microsoft Azure AI, Google AI Services, and Anthropic Claude. We also support workflow tools like n8n, Zapier, and Microsoft Power Automate, plus 200+ business tool integrations.",
					},
					{
						Question: "How long does it take to set up an automation?",
						Answer:   "Setup time varies by complexity, but most standard automations can be configured within 1-2 weeks. Complex custom solutions may take 4-6 weeks. Our team provides detailed timelines during the consultation phase.",
					},
				},
			},
			{
				Category: "Pricing",
				Entries: []FAQEntry{
					{
						Question: "What are your pricing plans?",
						Answer:   "We offer three main plans: Starter ($99/month) for small businesses with up to 5 automations, Professional ($299/month) for growing businesses with up to 20 automations and advanced features, and Enterprise (custom pricing) for large organizations with unlimited automations and custom solutions.",
					},
					{
						Question: "Is there a free trial available?",
						Answer:   "Yes! We offer a 14-day free trial for our Starter plan. This includes access to basic automations, AI chatbot, and email support so you can experience the value before committing.",
					},
					{
						Question: "Are there any setup fees?",
						Answer:   "Setup fees vary by plan. Starter and Professional plans include basic setup in the monthly fee. Enterprise plans may include custom development costs depending on requirements. We provide transparent pricing during consultation.",
					},
					{
						Question: "Can I change my plan later?",
						Answer:   "Yes, you can upgrade or downgrade your plan at any time. We'll help you transition smoothly and ensure you don't lose any data or configurations during the change.",
					},
				},
			},
			{
				Category: "Support",
				Entries: []FAQEntry{
					{
						Question: "What kind of support do you provide?",
						Answer:   "We provide comprehensive support including email support for all plans, priority support for Professional and Enterprise plans, dedicated support for Enterprise customers, and 24/7 monitoring for critical systems. Our AI consulting team is also available for setup, training, and optimization.",
					},
					{
						Question: "Do you provide training for my team?",
						Answer:   "Yes! We provide comprehensive training for your team including platform orientation, automation management, best practices, and ongoing education. Training is included with Professional and Enterprise plans.",
					},
					{
						Question: "What if I need help with a specific integration?",
						Answer:   "Our support team specializes in integrations and can help you connect any of our 200+ supported tools. We provide step-by-step guidance, troubleshooting, and custom integration development if needed.",
					},
					{
						Question: "Is there documentation available?",
						Answer:   "Yes, we provide comprehensive documentation including setup guides, API documentation, best practices, and troubleshooting guides. All documentation is available in our knowledge base and is regularly updated.",
					},
				},
			},
			{
				Category: "Security",
				Entries: []FAQEntry{
					{
						Question: "How secure is my data with ReadyReserve AI?",
						Answer:   "Security is our top priority. We use enterprise-grade encryption, comply with GDPR and HIPAA regulations, implement 24/7 security monitoring, and provide detailed audit trails. All data is stored securely and access is strictly controlled.",
					},
					{
						Question: "Do you comply with industry regulations?",
						Answer:   "Yes, we comply with major industry regulations including GDPR for data protection, HIPAA for healthcare, SOC 2 for security standards, and ISO 27001 for information security management. We can help you meet your specific compliance requirements.",
					},
					{
						Question: "Where is my data stored?",
						Answer:   "Your data is stored in secure, geographically distributed data centers with multiple redundancy layers. We use industry-leading cloud providers with enterprise-grade security and compliance certifications.",
					},
					{
						Question: "Can I export my data?",
						Answer:   "Yes, you can export your data at any time in standard formats (CSV, JSON, XML). We also provide data migration assistance if you need to move to another platform.",
					},
				},
			},
		},
		Contact: ContactInfo{
			Email:        "hello@readyreserve.ai",
			Phone:        "+1 (555) 123-4567",
			Address:      "123 AI Innovation Drive, Tech City, TC 12345",
			Hours:        "Monday - Friday: 9:00 AM - 6:00 PM EST",
			SupportEmail: "support@readyreserve.ai",
			SalesEmail:   "sales@readyreserve.ai",
		},
		Social: SocialMedia{
			Twitter:   "@readyreserve_ai",
			LinkedIn:  "ReadyReserve AI",
			Facebook:  "ReadyReserve AI",
			Instagram: "@readyreserve_ai",
		},
	}
}
