package seed

import "github.com/yigit/intlportal/internal/app/models"

// FAQCategories is the support center's question bank.
func FAQCategories() []models.FAQCategory {
	return []models.FAQCategory{
		{ID: "academic", Title: "Academic Support", Questions: []models.FAQ{
			{ID: "grades", Question: "How can I view my grades and GPA?", Answer: `You can view your grades by going to the "Academic" section and then clicking on the "Grades Summary" tab. Here you'll find your current GPA, course grades, and academic progress tracking.`},
			{ID: "courses", Question: "How do I check my class schedule?", Answer: `You can check your class schedule by going to the "Classes" section and entering your class code (e.g., 4KA21, 4KA20, 3SI15) to view your weekly schedule.`},
			{ID: "transcript", Question: "How can I request an official transcript?", Answer: `Official transcripts can be requested through the "Documents" section. Click on "Request Transcript" and follow the instructions. Processing typically takes 3-5 business days.`},
		}},
		{ID: "visa", Title: "Visa & Immigration", Questions: []models.FAQ{
			{ID: "visa-info", Question: "How do I view my visa and immigration information?", Answer: `You can view all your visa and immigration information by going to the "Visa & Immigration" page. This section contains comprehensive information about visa processes and requirements.`},
			{ID: "visa-renewal", Question: "When should I renew my visa?", Answer: "You should begin the renewal process at least 60 days before your visa expires. The system will send you automatic reminders when renewal is due."},
			{ID: "work-authorization", Question: "Can I work while studying?", Answer: "F-1 students can work on-campus up to 20 hours per week during academic sessions. For off-campus work, you need specific authorization like CPT or OPT."},
		}},
		{ID: "documents", Title: "Documents & Records", Questions: []models.FAQ{
			{ID: "upload-docs", Question: "How do I upload required documents?", Answer: `Navigate to the "Documents" section and click "Upload Document".`},
			{ID: "doc-verification", Question: "How long does document verification take?", Answer: "Document verification typically takes 2-3 business days. You'll receive an email notification once your documents are reviewed."},
			{ID: "missing-docs", Question: "What if I'm missing required documents?", Answer: `Check the "Documents" section for a list of required documents. Contact the International Student Office if you need help obtaining any missing documents.`},
		}},
		{ID: "financial", Title: "Financial Support", Questions: []models.FAQ{
			{ID: "tuition-payment", Question: "How do I pay my tuition fees?", Answer: `You can view and manage your tuition fees by going to the "Academic" section and clicking on the "Tuition Fees" tab.`},
			{ID: "financial-aid", Question: "How do I check my financial aid status?", Answer: "Contact the Financial Aid Office directly for information about your financial aid status and available opportunities for international students."},
			{ID: "emergency-funds", Question: "What if I have a financial emergency?", Answer: "Contact the International Student Office immediately. We have emergency fund programs and can help connect you with resources and support."},
		}},
		{ID: "technical", Title: "Technical Support", Questions: []models.FAQ{
			{ID: "login-issues", Question: "I can't log into my account", Answer: "Contact IT Support with your student ID for assistance with login issues."},
			{ID: "system-requirements", Question: "What are the system requirements?", Answer: "This is a web-based dashboard that works on all modern browsers (Chrome, Firefox, Safari, Edge). Ensure JavaScript is enabled and your browser is up to date. Mobile support is not currently available."},
			{ID: "mobile-access", Question: "Can I access the dashboard on my phone?", Answer: "Mobile support is not currently available. Please use a desktop or laptop computer to access the dashboard."},
		}},
	}
}

// SupportContacts are the offices listed under the FAQ.
func SupportContacts() []models.SupportContact {
	return []models.SupportContact{
		{Title: "International Student Office", Description: "General inquiries and support", Phone: "+1 (555) 123-4567", Email: "international@university.edu", Hours: "Mon-Fri: 8:00 AM - 5:00 PM"},
		{Title: "Academic Advising", Description: "Course and academic support", Phone: "+1 (555) 123-4568", Email: "advising@university.edu", Hours: "Mon-Fri: 9:00 AM - 4:00 PM"},
		{Title: "Technical Support", Description: "System and technical issues", Phone: "+1 (555) 123-4569", Email: "support@university.edu", Hours: "24/7 Online Support"},
		{Title: "Emergency Line", Description: "Urgent matters only", Phone: "+1 (555) 911-HELP", Email: "emergency@university.edu", Hours: "24/7 Emergency Support"},
	}
}
