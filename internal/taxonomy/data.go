package taxonomy

// The tables below are the curated knowledge base: category → subcategory →
// canonical names, plus a synonym table mapping canonical skills to common
// spelling variants and abbreviations.

func buildSkillCategories() map[string]map[string][]string {
	return map[string]map[string][]string{
		"programming_languages": {
			"compiled":      {"Java", "C++", "C#", "Go", "Rust", "C", "Kotlin", "Swift", "Objective-C"},
			"interpreted":   {"Python", "JavaScript", "Ruby", "PHP", "Perl", "R", "MATLAB"},
			"functional":    {"Haskell", "Scala", "Clojure", "F#", "Erlang", "Elixir"},
			"web_languages": {"HTML", "CSS", "TypeScript", "Sass", "SCSS", "Less"},
			"scripting":     {"Bash", "PowerShell", "Shell", "Zsh", "Fish", "AWK", "Sed"},
		},
		"web_technologies": {
			"frontend_frameworks": {"React", "Angular", "Vue.js", "Svelte", "Next.js", "Nuxt.js", "Gatsby"},
			"backend_frameworks":  {"Django", "Flask", "FastAPI", "Express.js", "Spring Boot", "Rails", "Laravel"},
			"css_frameworks":      {"Bootstrap", "Tailwind CSS", "Material-UI", "Bulma", "Foundation"},
			"build_tools":         {"Webpack", "Vite", "Parcel", "Rollup", "Gulp", "Grunt"},
			"testing":             {"Jest", "Mocha", "Cypress", "Selenium", "Playwright", "Jasmine"},
		},
		"databases": {
			"relational":      {"MySQL", "PostgreSQL", "SQL Server", "Oracle", "SQLite", "MariaDB"},
			"nosql":           {"MongoDB", "Redis", "Cassandra", "CouchDB", "Neo4j", "DynamoDB"},
			"data_warehouses": {"Snowflake", "Redshift", "BigQuery", "Databricks", "Teradata"},
			"orm":             {"SQLAlchemy", "Hibernate", "Prisma", "TypeORM", "Sequelize"},
		},
		"cloud_platforms": {
			"aws":              {"AWS", "EC2", "S3", "Lambda", "RDS", "ECS", "EKS", "CloudFormation"},
			"azure":            {"Azure", "Azure Functions", "Azure SQL", "Azure DevOps", "AKS"},
			"gcp":              {"Google Cloud", "GCP", "App Engine", "Cloud Functions", "BigQuery", "GKE"},
			"containerization": {"Docker", "Kubernetes", "OpenShift", "Podman", "Helm"},
		},
		"data_science": {
			"libraries":     {"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch", "Keras"},
			"visualization": {"Matplotlib", "Seaborn", "Plotly", "Tableau", "Power BI", "D3.js"},
			"big_data":      {"Apache Spark", "Hadoop", "Kafka", "Airflow", "Flink", "Storm"},
			"ml_ops":        {"MLflow", "Kubeflow", "SageMaker", "Weights & Biases", "DVC"},
		},
		"devops": {
			"ci_cd":           {"Jenkins", "GitLab CI", "GitHub Actions", "CircleCI", "Travis CI", "Azure DevOps"},
			"monitoring":      {"Prometheus", "Grafana", "ELK Stack", "Splunk", "Datadog", "New Relic"},
			"infrastructure":  {"Terraform", "Ansible", "Chef", "Puppet", "CloudFormation", "Pulumi"},
			"version_control": {"Git", "SVN", "Mercurial", "Perforce", "Bazaar"},
		},
		"mobile_development": {
			"native_ios":     {"Swift", "Objective-C", "Xcode", "iOS SDK", "Core Data", "UIKit"},
			"native_android": {"Kotlin", "Java", "Android Studio", "Android SDK", "Room", "Jetpack"},
			"cross_platform": {"React Native", "Flutter", "Xamarin", "Ionic", "Cordova"},
		},
		"soft_skills": {
			"leadership":      {"Team Leadership", "Project Management", "Strategic Planning", "Mentoring"},
			"communication":   {"Public Speaking", "Technical Writing", "Documentation", "Presentations"},
			"problem_solving": {"Analytical Thinking", "Debugging", "Troubleshooting", "Research"},
			"collaboration":   {"Agile", "Scrum", "Kanban", "Cross-functional Teams", "Stakeholder Management"},
		},
		"security": {
			"application":    {"OWASP", "Penetration Testing", "Vulnerability Assessment", "Secure Coding"},
			"network":        {"Firewall", "VPN", "SSL/TLS", "Network Security", "Intrusion Detection"},
			"cloud_security": {"IAM", "Security Groups", "WAF", "KMS", "Secrets Management"},
			"compliance":     {"SOC 2", "HIPAA", "GDPR", "PCI DSS", "ISO 27001"},
		},
	}
}

func buildCertificationMappings() map[string]map[string][]string {
	return map[string]map[string][]string{
		"cloud_certifications": {
			"aws": {
				"AWS Solutions Architect", "AWS Developer", "AWS SysOps", "AWS DevOps Engineer",
				"AWS Security", "AWS Data Analytics", "AWS Machine Learning",
			},
			"azure": {
				"Azure Fundamentals", "Azure Administrator", "Azure Developer", "Azure Solutions Architect",
				"Azure DevOps Engineer", "Azure Security Engineer", "Azure Data Engineer",
			},
			"gcp": {
				"Google Cloud Architect", "Google Cloud Engineer", "Google Cloud Developer",
				"Google Cloud Data Engineer", "Google Cloud Security Engineer",
			},
		},
		"programming_certifications": {
			"java":       {"Oracle Certified Java Programmer", "Oracle Certified Java Developer", "Spring Certification"},
			"python":     {"Python Institute Certifications", "Django Certification"},
			"microsoft":  {".NET Certification", "C# Certification", "Azure Developer"},
			"javascript": {"Node.js Certification", "React Certification"},
		},
		"project_management": {
			"agile":       {"Scrum Master", "Product Owner", "Agile Coach", "SAFe"},
			"traditional": {"PMP", "PRINCE2", "CAPM", "Project Management Professional"},
		},
		"data_certifications": {
			"analytics":        {"Tableau Certified", "Power BI Certification", "Google Analytics"},
			"big_data":         {"Cloudera Certification", "Hortonworks Certification", "Databricks Certification"},
			"machine_learning": {"TensorFlow Certification", "AWS ML Specialty", "Google ML Engineer"},
		},
		"security_certifications": {
			"general":        {"CISSP", "CISM", "CISA", "Security+", "CEH", "OSCP"},
			"cloud_security": {"AWS Security Specialty", "Azure Security Engineer", "CCSP"},
		},
		"infrastructure": {
			"devops":     {"Docker Certification", "Kubernetes Certification", "Terraform Certification"},
			"networking": {"CCNA", "CCNP", "Network+", "CISSP"},
		},
	}
}

func buildSkillSynonyms() map[string][]string {
	return map[string][]string{
		// Programming languages
		"JavaScript": {"JS", "ECMAScript", "Node.js", "NodeJS"},
		"Python":     {"Python3", "Python 3", "Py"},
		"Java":       {"Java 8", "Java 11", "Java 17", "JDK", "JRE"},
		"C#":         {"C Sharp", "CSharp", "C-Sharp", ".NET"},
		"C++":        {"C Plus Plus", "CPlusPlus", "C plus plus"},
		"TypeScript": {"TS"},
		"PHP":        {"PHP7", "PHP8", "Hypertext Preprocessor"},

		// Frameworks
		"React":       {"ReactJS", "React.js"},
		"Angular":     {"AngularJS", "Angular 2+", "Angular2"},
		"Vue.js":      {"Vue", "VueJS"},
		"Django":      {"Django Framework", "Django REST"},
		"Flask":       {"Flask Framework", "Flask API"},
		"Spring Boot": {"Spring", "Spring Framework"},
		"Express.js":  {"Express", "ExpressJS"},

		// Databases
		"MySQL":      {"My SQL", "MySQL Database"},
		"PostgreSQL": {"Postgres", "PostgresSQL"},
		"MongoDB":    {"Mongo DB", "Mongo"},
		"SQL Server": {"Microsoft SQL Server", "MS SQL", "MSSQL"},

		// Cloud platforms
		"Amazon Web Services":   {"AWS", "Amazon AWS"},
		"Google Cloud Platform": {"GCP", "Google Cloud"},
		"Microsoft Azure":       {"Azure", "Azure Cloud"},

		// Tools
		"Git":        {"Git Version Control", "GitHub", "GitLab"},
		"Docker":     {"Docker Container", "Containerization"},
		"Kubernetes": {"K8s", "Kube", "K8"},
		"Jenkins":    {"Jenkins CI", "Jenkins CI/CD"},

		// Methodologies
		"Agile":  {"Agile Methodology", "Agile Development"},
		"Scrum":  {"Scrum Methodology", "Scrum Framework"},
		"DevOps": {"Dev Ops", "Development Operations"},

		// Certifications
		"AWS Certified Solutions Architect": {"AWS Solutions Architect", "AWS SA", "Solutions Architect Associate"},
		"Certified Scrum Master":            {"CSM", "Scrum Master Certification"},
		"Project Management Professional":   {"PMP", "PMP Certification"},
	}
}
