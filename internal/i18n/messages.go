package i18n

import "github.com/bullion-next/internal/constants"

// messages 各语言文案表
// 未覆盖的键回退到默认语言，再回退为键本身。
var messages = map[string]map[string]string{
	constants.LocaleIDID: {
		"error.bad_request":            "Permintaan tidak valid",
		"error.unauthorized":           "Silakan masuk terlebih dahulu",
		"error.forbidden":              "Tidak memiliki izin untuk operasi ini",
		"error.not_found":              "Data tidak ditemukan",
		"error.internal":               "Terjadi kesalahan pada server",
		"error.rate_limited":           "Terlalu banyak permintaan, coba lagi dalam %d detik",
		"error.rate_limit_unavailable": "Layanan pembatasan tidak tersedia",

		"error.jwt_secret_missing":  "Konfigurasi autentikasi belum lengkap",
		"error.auth_header_missing": "Header otorisasi tidak ditemukan",
		"error.auth_header_invalid": "Format header otorisasi tidak valid",
		"error.token_invalid":       "Token tidak valid",
		"error.token_revoked":       "Token sudah tidak berlaku, silakan masuk kembali",
		"error.user_disabled":       "Akun telah dinonaktifkan",

		"error.admin_id_invalid":      "Identitas admin tidak valid",
		"error.admin_id_type_invalid": "Identitas admin tidak dapat dibaca",
		"error.user_id_invalid":       "Identitas pengguna tidak valid",
		"error.user_id_type_invalid":  "Identitas pengguna tidak dapat dibaca",

		"error.invalid_credentials":           "Email atau kata sandi salah",
		"error.email_invalid":                 "Format email tidak valid",
		"error.email_exists":                  "Email sudah terdaftar",
		"error.email_not_verified":            "Email belum diverifikasi",
		"error.verify_code_invalid":           "Kode verifikasi salah",
		"error.verify_code_expired":           "Kode verifikasi sudah kedaluwarsa",
		"error.verify_code_attempts_exceeded": "Percobaan kode verifikasi melebihi batas",
		"error.verify_code_too_frequent":      "Terlalu sering meminta kode, coba lagi dalam %d detik",
		"error.password_policy":               "Kata sandi tidak memenuhi kebijakan keamanan",
		"error.password_min_length":           "Kata sandi minimal %d karakter",
		"error.password_require_upper":        "Kata sandi harus mengandung huruf besar",
		"error.password_require_lower":        "Kata sandi harus mengandung huruf kecil",
		"error.password_require_number":       "Kata sandi harus mengandung angka",
		"error.password_require_special":      "Kata sandi harus mengandung karakter khusus",
		"error.password_incorrect":            "Kata sandi saat ini salah",
		"error.captcha_required":              "Captcha wajib diisi",
		"error.captcha_invalid":               "Captcha salah",
		"error.captcha_config_invalid":        "Konfigurasi captcha tidak valid",
		"error.email_send_failed":             "Gagal mengirim email",
		"error.email_disabled":                "Layanan email belum diaktifkan",
		"error.email_recipient_not_found":     "Alamat email penerima ditolak",
		"error.email_service_not_configured":  "Layanan email belum dikonfigurasi",
		"error.verify_purpose_invalid":        "Tujuan verifikasi tidak dikenal",
		"error.agreement_required":            "Anda harus menyetujui syarat dan ketentuan",
		"error.profile_empty":                 "Tidak ada data profil yang diubah",
		"error.email_change_invalid":          "Email baru tidak valid",
		"error.email_change_exists":           "Email baru sudah terdaftar",

		"error.category_not_found":   "Kategori tidak ditemukan",
		"error.category_slug_exists": "Slug kategori sudah dipakai",
		"error.category_in_use":      "Kategori masih dipakai oleh produk",
		"error.product_not_found":    "Produk tidak ditemukan",
		"error.product_unavailable":  "Produk sedang tidak tersedia",
		"error.product_out_of_stock": "Stok produk tidak mencukupi",
		"error.product_slug_exists":  "Slug produk sudah dipakai",
		"error.quantity_invalid":     "Jumlah tidak valid",
		"error.cart_empty":           "Keranjang belanja kosong",
		"error.cart_item_not_found":  "Item keranjang tidak ditemukan",

		"error.order_not_found":        "Pesanan tidak ditemukan",
		"error.order_status_conflict":  "Status pesanan tidak mengizinkan operasi ini",
		"error.order_total_mismatch":   "Total pesanan tidak konsisten dengan rinciannya",
		"error.address_required":       "Alamat pengiriman wajib diisi",
		"error.payment_proof_required": "Bukti pembayaran wajib diunggah",

		"error.affiliate_exists":              "Akun sudah menjadi afiliasi",
		"error.affiliate_not_found":           "Profil afiliasi tidak ditemukan",
		"error.affiliate_not_opened":          "Program afiliasi belum diaktifkan",
		"error.affiliate_disabled":            "Profil afiliasi telah dinonaktifkan",
		"error.referral_code_invalid":         "Kode referral tidak valid",
		"error.referral_code_generate_failed": "Gagal membuat kode referral, coba lagi",
		"error.self_referral":                 "Tidak dapat memakai kode referral sendiri",

		"error.payout_not_found":            "Permintaan pencairan tidak ditemukan",
		"error.payout_below_minimum":        "Jumlah pencairan minimal %s",
		"error.payout_insufficient_balance": "Saldo komisi tidak mencukupi",
		"error.payout_status_conflict":      "Status pencairan tidak mengizinkan operasi ini",
		"error.payout_proof_required":       "Bukti transfer wajib diunggah",
		"error.bank_account_required":       "Data rekening bank wajib diisi",

		"error.batch_not_found":       "Batch pembayaran tidak ditemukan",
		"error.batch_empty":           "Tidak ada pesanan yang memenuhi syarat batch",
		"error.batch_status_conflict": "Status batch tidak mengizinkan operasi ini",
		"error.batch_proof_required":  "Bukti pembayaran batch wajib diunggah",
		"error.cutoff_invalid":        "Waktu cut-off tidak valid",

		"error.upload_file_required": "File wajib dipilih",
		"error.upload_too_large":     "Ukuran file melebihi batas",
		"error.upload_type_invalid":  "Jenis file tidak diizinkan",
		"error.upload_failed":        "Gagal menyimpan file",

		"error.banner_not_found":        "Banner tidak ditemukan",
		"error.banner_invalid":          "Data banner tidak valid",
		"error.price_image_not_found":   "Gambar harga belum diatur",
		"error.setting_invalid":         "Nilai pengaturan tidak valid",
		"error.dashboard_range_invalid": "Rentang waktu tidak valid",
		"error.role_invalid":            "Peran tidak valid",
		"error.admin_not_found":         "Admin tidak ditemukan",

		"error.admin_username_invalid":      "Nama pengguna admin tidak valid",
		"error.admin_username_exists":       "Nama pengguna admin sudah dipakai",
		"error.admin_delete_self_forbidden": "Tidak dapat menghapus akun sendiri",
		"error.admin_delete_protected":      "Akun admin ini dilindungi",
		"error.admin_delete_last_forbidden": "Admin terakhir tidak dapat dihapus",

		"order.status.pending_confirmation": "Menunggu Konfirmasi",
		"order.status.unpaid":               "Menunggu Pembayaran",
		"order.status.payment_review":       "Verifikasi Pembayaran",
		"order.status.preparing":            "Sedang Diproduksi",
		"order.status.shipping":             "Dalam Pengiriman",
		"order.status.completed":            "Selesai",
		"order.status.canceled":             "Dibatalkan",

		"email.verify_code.subject.register":     "Kode Verifikasi Pendaftaran",
		"email.verify_code.subject.reset":        "Kode Verifikasi Atur Ulang Kata Sandi",
		"email.verify_code.subject.change_email": "Kode Verifikasi Ganti Email",
		"email.verify_code.subject.generic":      "Kode Verifikasi Email",
		"email.verify_code.body":                 "Kode verifikasi Anda: %s\n\nJangan bagikan kode ini kepada siapa pun.",

		"email.order_status.subject":        "Pembaruan Pesanan: %s",
		"email.order_status.body":           "Pesanan %s kini berstatus %s.\nTotal: %s %s",
		"email.order_status.body_unpaid":    "Pesanan %s telah dikonfirmasi.\nTotal: %s %s\n\nSilakan transfer ke rekening kami lalu unggah bukti pembayaran di halaman pesanan.",
		"email.order_status.body_preparing": "Pembayaran pesanan %s telah diverifikasi.\nTotal: %s %s\n\nPesanan Anda sedang diproduksi.",
		"email.order_status.body_shipping":  "Pesanan %s sedang dikirim.\nTotal: %s %s\n\nInfo pengiriman: %s",
		"email.order_status.body_completed": "Pesanan %s telah selesai.\nTotal: %s %s\n\nTerima kasih telah berbelanja.",
		"email.order_status.body_canceled":  "Pesanan %s telah dibatalkan.\nTotal: %s %s",

		"email.payout_result.subject":        "Hasil Pencairan Komisi",
		"email.payout_result.body_processed": "Pencairan komisi Anda sebesar %s %s telah ditransfer. Silakan periksa rekening Anda.",
		"email.payout_result.body_rejected":  "Pencairan komisi Anda sebesar %s %s ditolak.\nAlasan: %s",
	},
	constants.LocaleEnUS: {
		"error.bad_request":            "Invalid request",
		"error.unauthorized":           "Please sign in first",
		"error.forbidden":              "You do not have permission for this operation",
		"error.not_found":              "Not found",
		"error.internal":               "Internal server error",
		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiting service unavailable",

		"error.jwt_secret_missing":  "Authentication is not configured",
		"error.auth_header_missing": "Authorization header is missing",
		"error.auth_header_invalid": "Authorization header is malformed",
		"error.token_invalid":       "Invalid token",
		"error.token_revoked":       "Token has been revoked, please sign in again",
		"error.user_disabled":       "Account has been disabled",

		"error.admin_id_invalid":      "Invalid admin identity",
		"error.admin_id_type_invalid": "Unreadable admin identity",
		"error.user_id_invalid":       "Invalid user identity",
		"error.user_id_type_invalid":  "Unreadable user identity",

		"error.invalid_credentials":           "Incorrect email or password",
		"error.email_invalid":                 "Invalid email address",
		"error.email_exists":                  "Email is already registered",
		"error.email_not_verified":            "Email is not verified",
		"error.verify_code_invalid":           "Incorrect verification code",
		"error.verify_code_expired":           "Verification code has expired",
		"error.verify_code_attempts_exceeded": "Too many verification attempts",
		"error.verify_code_too_frequent":      "Requested too often, retry in %d seconds",
		"error.password_policy":               "Password does not meet the security policy",
		"error.password_min_length":           "Password must be at least %d characters",
		"error.password_require_upper":        "Password must contain an uppercase letter",
		"error.password_require_lower":        "Password must contain a lowercase letter",
		"error.password_require_number":       "Password must contain a digit",
		"error.password_require_special":      "Password must contain a special character",
		"error.password_incorrect":            "Current password is incorrect",
		"error.captcha_required":              "Captcha is required",
		"error.captcha_invalid":               "Incorrect captcha",
		"error.captcha_config_invalid":        "Captcha is misconfigured",
		"error.email_send_failed":             "Failed to send email",
		"error.email_disabled":                "Email service is not enabled",
		"error.email_recipient_not_found":     "Recipient address was rejected",
		"error.email_service_not_configured":  "Email service is not configured",
		"error.verify_purpose_invalid":        "Unknown verification purpose",
		"error.agreement_required":            "You must accept the terms of service",
		"error.profile_empty":                 "No profile fields to update",
		"error.email_change_invalid":          "New email is invalid",
		"error.email_change_exists":           "New email is already registered",

		"error.category_not_found":   "Category not found",
		"error.category_slug_exists": "Category slug already in use",
		"error.category_in_use":      "Category is still used by products",
		"error.product_not_found":    "Product not found",
		"error.product_unavailable":  "Product is unavailable",
		"error.product_out_of_stock": "Insufficient product stock",
		"error.product_slug_exists":  "Product slug already in use",
		"error.quantity_invalid":     "Invalid quantity",
		"error.cart_empty":           "Shopping cart is empty",
		"error.cart_item_not_found":  "Cart item not found",

		"error.order_not_found":        "Order not found",
		"error.order_status_conflict":  "Order status does not allow this operation",
		"error.order_total_mismatch":   "Order total is inconsistent with its breakdown",
		"error.address_required":       "Shipping address is required",
		"error.payment_proof_required": "Payment proof is required",

		"error.affiliate_exists":              "Account is already an affiliate",
		"error.affiliate_not_found":           "Affiliate profile not found",
		"error.affiliate_not_opened":          "Affiliate program is not opened yet",
		"error.affiliate_disabled":            "Affiliate profile is disabled",
		"error.referral_code_invalid":         "Invalid referral code",
		"error.referral_code_generate_failed": "Failed to generate referral code, please retry",
		"error.self_referral":                 "Cannot use your own referral code",

		"error.payout_not_found":            "Payout request not found",
		"error.payout_below_minimum":        "Minimum payout amount is %s",
		"error.payout_insufficient_balance": "Insufficient commission balance",
		"error.payout_status_conflict":      "Payout status does not allow this operation",
		"error.payout_proof_required":       "Transfer proof is required",
		"error.bank_account_required":       "Bank account details are required",

		"error.batch_not_found":       "Payment batch not found",
		"error.batch_empty":           "No orders match the batch criteria",
		"error.batch_status_conflict": "Batch status does not allow this operation",
		"error.batch_proof_required":  "Batch payment proof is required",
		"error.cutoff_invalid":        "Invalid cut-off time",

		"error.upload_file_required": "A file is required",
		"error.upload_too_large":     "File exceeds the size limit",
		"error.upload_type_invalid":  "File type is not allowed",
		"error.upload_failed":        "Failed to store the file",

		"error.banner_not_found":        "Banner not found",
		"error.banner_invalid":          "Invalid banner data",
		"error.price_image_not_found":   "Price image is not configured",
		"error.setting_invalid":         "Invalid setting value",
		"error.dashboard_range_invalid": "Invalid date range",
		"error.role_invalid":            "Invalid role",
		"error.admin_not_found":         "Admin not found",

		"error.admin_username_invalid":      "Admin username is invalid",
		"error.admin_username_exists":       "Admin username is already taken",
		"error.admin_delete_self_forbidden": "You cannot delete your own account",
		"error.admin_delete_protected":      "This admin account is protected",
		"error.admin_delete_last_forbidden": "The last admin cannot be deleted",

		"order.status.pending_confirmation": "Awaiting Confirmation",
		"order.status.unpaid":               "Awaiting Payment",
		"order.status.payment_review":       "Payment Under Review",
		"order.status.preparing":            "In Production",
		"order.status.shipping":             "Shipping",
		"order.status.completed":            "Completed",
		"order.status.canceled":             "Canceled",

		"email.verify_code.subject.register":     "Registration Verification Code",
		"email.verify_code.subject.reset":        "Password Reset Verification Code",
		"email.verify_code.subject.change_email": "Change Email Verification Code",
		"email.verify_code.subject.generic":      "Email Verification Code",
		"email.verify_code.body":                 "Your verification code is: %s\n\nDo not share this code with anyone.",

		"email.order_status.subject":        "Order Update: %s",
		"email.order_status.body":           "Order %s is now %s.\nTotal: %s %s",
		"email.order_status.body_unpaid":    "Order %s has been confirmed.\nTotal: %s %s\n\nPlease transfer to our bank account and upload the payment proof on the order page.",
		"email.order_status.body_preparing": "Payment for order %s has been verified.\nTotal: %s %s\n\nYour order is now in production.",
		"email.order_status.body_shipping":  "Order %s has been shipped.\nTotal: %s %s\n\nShipping info: %s",
		"email.order_status.body_completed": "Order %s is completed.\nTotal: %s %s\n\nThank you for shopping with us.",
		"email.order_status.body_canceled":  "Order %s has been canceled.\nTotal: %s %s",

		"email.payout_result.subject":        "Commission Payout Result",
		"email.payout_result.body_processed": "Your commission payout of %s %s has been transferred. Please check your bank account.",
		"email.payout_result.body_rejected":  "Your commission payout of %s %s was rejected.\nReason: %s",
	},
	constants.LocaleZhCN: {
		"error.bad_request":            "请求参数错误",
		"error.unauthorized":           "请先登录",
		"error.forbidden":              "没有操作权限",
		"error.not_found":              "数据不存在",
		"error.internal":               "服务器内部错误",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务不可用",

		"error.jwt_secret_missing":  "鉴权配置缺失",
		"error.auth_header_missing": "缺少授权头",
		"error.auth_header_invalid": "授权头格式错误",
		"error.token_invalid":       "Token 无效",
		"error.token_revoked":       "Token 已失效，请重新登录",
		"error.user_disabled":       "账号已被禁用",

		"error.admin_id_invalid":      "管理员身份无效",
		"error.admin_id_type_invalid": "管理员身份无法识别",
		"error.user_id_invalid":       "用户身份无效",
		"error.user_id_type_invalid":  "用户身份无法识别",

		"error.invalid_credentials":           "邮箱或密码错误",
		"error.email_invalid":                 "邮箱格式不正确",
		"error.email_exists":                  "邮箱已注册",
		"error.email_not_verified":            "邮箱未验证",
		"error.verify_code_invalid":           "验证码错误",
		"error.verify_code_expired":           "验证码已过期",
		"error.verify_code_attempts_exceeded": "验证码尝试次数过多",
		"error.verify_code_too_frequent":      "发送过于频繁，请 %d 秒后重试",
		"error.password_policy":               "密码不满足安全策略",
		"error.password_min_length":           "密码长度至少 %d 位",
		"error.password_require_upper":        "密码必须包含大写字母",
		"error.password_require_lower":        "密码必须包含小写字母",
		"error.password_require_number":       "密码必须包含数字",
		"error.password_require_special":      "密码必须包含特殊字符",
		"error.password_incorrect":            "当前密码不正确",
		"error.captcha_required":              "请完成验证码",
		"error.captcha_invalid":               "验证码错误",
		"error.captcha_config_invalid":        "验证码配置无效",
		"error.email_send_failed":             "邮件发送失败",
		"error.email_disabled":                "邮件服务未启用",
		"error.email_recipient_not_found":     "收件人地址被拒收",
		"error.email_service_not_configured":  "邮件服务未配置",
		"error.verify_purpose_invalid":        "验证码用途不合法",
		"error.agreement_required":            "请先同意服务条款",
		"error.profile_empty":                 "没有需要更新的资料",
		"error.email_change_invalid":          "新邮箱不合法",
		"error.email_change_exists":           "新邮箱已被注册",

		"error.category_not_found":   "分类不存在",
		"error.category_slug_exists": "分类标识已被占用",
		"error.category_in_use":      "分类下仍有商品",
		"error.product_not_found":    "商品不存在",
		"error.product_unavailable":  "商品暂不可售",
		"error.product_out_of_stock": "商品库存不足",
		"error.product_slug_exists":  "商品标识已被占用",
		"error.quantity_invalid":     "数量不合法",
		"error.cart_empty":           "购物车为空",
		"error.cart_item_not_found":  "购物车项不存在",

		"error.order_not_found":        "订单不存在",
		"error.order_status_conflict":  "当前订单状态不允许该操作",
		"error.order_total_mismatch":   "订单总额与明细不一致",
		"error.address_required":       "收货地址必填",
		"error.payment_proof_required": "请上传付款凭证",

		"error.affiliate_exists":              "账号已是推广用户",
		"error.affiliate_not_found":           "推广档案不存在",
		"error.affiliate_not_opened":          "尚未开通推广",
		"error.affiliate_disabled":            "推广档案已被禁用",
		"error.referral_code_invalid":         "推广码无效",
		"error.referral_code_generate_failed": "推广码生成失败，请重试",
		"error.self_referral":                 "不能使用自己的推广码",

		"error.payout_not_found":            "提现申请不存在",
		"error.payout_below_minimum":        "提现金额不得低于 %s",
		"error.payout_insufficient_balance": "可提现佣金余额不足",
		"error.payout_status_conflict":      "当前提现状态不允许该操作",
		"error.payout_proof_required":       "请上传转账凭证",
		"error.bank_account_required":       "银行账户信息必填",

		"error.batch_not_found":       "付款批次不存在",
		"error.batch_empty":           "没有符合条件的订单可归入批次",
		"error.batch_status_conflict": "当前批次状态不允许该操作",
		"error.batch_proof_required":  "请上传批次付款凭证",
		"error.cutoff_invalid":        "截止时间不合法",

		"error.upload_file_required": "请选择文件",
		"error.upload_too_large":     "文件大小超出限制",
		"error.upload_type_invalid":  "文件类型不允许",
		"error.upload_failed":        "文件保存失败",

		"error.banner_not_found":        "轮播图不存在",
		"error.banner_invalid":          "轮播图数据不合法",
		"error.price_image_not_found":   "价格图尚未配置",
		"error.setting_invalid":         "设置值不合法",
		"error.dashboard_range_invalid": "时间范围不合法",
		"error.role_invalid":            "角色不合法",
		"error.admin_not_found":         "管理员不存在",

		"error.admin_username_invalid":      "管理员用户名不合法",
		"error.admin_username_exists":       "管理员用户名已存在",
		"error.admin_delete_self_forbidden": "不能删除自己的账号",
		"error.admin_delete_protected":      "该管理员账号受保护",
		"error.admin_delete_last_forbidden": "不能删除最后一个管理员",

		"order.status.pending_confirmation": "待确认",
		"order.status.unpaid":               "待付款",
		"order.status.payment_review":       "付款审核中",
		"order.status.preparing":            "生产中",
		"order.status.shipping":             "配送中",
		"order.status.completed":            "已完成",
		"order.status.canceled":             "已取消",

		"email.verify_code.subject.register":     "注册验证码",
		"email.verify_code.subject.reset":        "重置密码验证码",
		"email.verify_code.subject.change_email": "更换邮箱验证码",
		"email.verify_code.subject.generic":      "邮箱验证码",
		"email.verify_code.body":                 "您的验证码是：%s\n\n请勿将验证码泄露给任何人。",

		"email.order_status.subject":        "订单状态更新：%s",
		"email.order_status.body":           "订单 %s 当前状态：%s。\n总额：%s %s",
		"email.order_status.body_unpaid":    "订单 %s 已确认。\n总额：%s %s\n\n请转账至我们的银行账户，并在订单页上传付款凭证。",
		"email.order_status.body_preparing": "订单 %s 的付款已核实。\n总额：%s %s\n\n您的订单已进入生产。",
		"email.order_status.body_shipping":  "订单 %s 已发货。\n总额：%s %s\n\n物流信息：%s",
		"email.order_status.body_completed": "订单 %s 已完成。\n总额：%s %s\n\n感谢您的惠顾。",
		"email.order_status.body_canceled":  "订单 %s 已取消。\n总额：%s %s",

		"email.payout_result.subject":        "佣金提现结果",
		"email.payout_result.body_processed": "您的佣金提现 %s %s 已转账，请查收银行账户。",
		"email.payout_result.body_rejected":  "您的佣金提现 %s %s 被驳回。\n原因：%s",
	},
}
