package fallback

import "fmt"

// Canned topic answers. Built once, read-only; concurrent reads need no
// synchronization.
var responses = map[Topic]string{
	TopicServices: `NextCore AI offers comprehensive digital transformation services including:

1. AI & Automation - Chatbots, RPA, AI consulting using Python, TensorFlow
2. Web Development - React, Node.js, Django websites and web applications
3. Mobile App Development - Flutter, React Native, iOS/Android apps
4. Cloud Services - AWS, Azure deployment, migration, and DevOps
5. UI/UX Design - Figma, Adobe XD design and prototyping
6. SEO & Content Writing - Organic traffic growth and content strategy
7. Ecommerce Development - Shopify, WooCommerce, custom stores
8. Graphic Design - Logos, branding, marketing materials

We're based in Bangalore and serve clients globally with full-stack teams.`,

	TopicTechnologies: `Our technology stack includes:

Frontend: React.js, Next.js, Vue.js, HTML5, CSS3, JavaScript
Backend: Node.js, Python, Django, Flask, PHP Laravel
Mobile: Flutter, React Native, Kotlin, Swift
Databases: MongoDB, MySQL, PostgreSQL, Firebase
Cloud: AWS, Azure, Google Cloud, DigitalOcean
AI/ML: OpenAI GPT-4, TensorFlow, PyTorch, LangChain
DevOps: Docker, Kubernetes, Jenkins, CI/CD pipelines`,

	TopicContact: `You can reach NextCore AI at:

Email: nextcoreai.in@gmail.com
Phone: +91 6202579799
Location: Bangalore, Karnataka, India

We're available for consultations and project discussions.`,

	TopicPricing: `Our pricing varies based on project scope and requirements. We offer:

- Competitive rates for all services
- Flexible engagement models
- Free initial consultations
- Transparent project estimates

Please contact us at nextcoreai.in@gmail.com or +91 6202579799 for a detailed quote.`,

	TopicAbout: `NextCore AI is a Bangalore-based digital transformation company offering cutting-edge technology solutions to startups, SMEs, and enterprises globally.

We specialize in AI automation, web development, mobile apps, cloud services, and digital design. Our vision is to reshape the digital world through intelligent systems and scalable architectures.`,
}

func defaultResponse(question string) string {
	return fmt.Sprintf(`Thank you for your question about %q.

NextCore AI is a full-service digital transformation company based in Bangalore. We offer AI automation, web development, mobile apps, cloud services, UI/UX design, and more.

For detailed information about your specific needs, please contact us:
Email: nextcoreai.in@gmail.com
Phone: +91 6202579799

How else can I help you today?`, question)
}
